package http

import (
	"voice-shopping-list/internal/voice"
)

// Wire format of the voice platform. The structure and casing are part
// of the skill contract and must not change.

type outputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type reprompt struct {
	OutputSpeech outputSpeech `json:"outputSpeech"`
}

type skillResponseBody struct {
	OutputSpeech     outputSpeech `json:"outputSpeech"`
	Reprompt         *reprompt    `json:"reprompt,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type skillResponse struct {
	Version  string            `json:"version"`
	Response skillResponseBody `json:"response"`
}

func newSkillResponse(d voice.DialogueResponse) skillResponse {
	resp := skillResponse{
		Version: "1.0",
		Response: skillResponseBody{
			OutputSpeech: outputSpeech{
				Type: "PlainText",
				Text: d.SpeechText,
			},
			ShouldEndSession: d.ShouldEndSession,
		},
	}
	if d.RepromptText != "" {
		resp.Response.Reprompt = &reprompt{
			OutputSpeech: outputSpeech{
				Type: "PlainText",
				Text: d.RepromptText,
			},
		}
	}
	return resp
}
