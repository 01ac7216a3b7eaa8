package voice

// DialogueResponse is what every handled command produces. A response
// with a reprompt keeps the session open; the builders below are the
// only way to construct one, so that invariant cannot be violated.
type DialogueResponse struct {
	SpeechText       string
	RepromptText     string
	ShouldEndSession bool
}

// Continue speaks and reprompts, keeping the session open.
func Continue(speech, reprompt string) DialogueResponse {
	return DialogueResponse{
		SpeechText:   speech,
		RepromptText: reprompt,
	}
}

// Speak answers without a reprompt, keeping the session open.
func Speak(speech string) DialogueResponse {
	return DialogueResponse{SpeechText: speech}
}

// End answers and closes the session.
func End(speech string) DialogueResponse {
	return DialogueResponse{
		SpeechText:       speech,
		ShouldEndSession: true,
	}
}
