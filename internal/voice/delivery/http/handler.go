package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/nlu"
	"voice-shopping-list/internal/voice"
)

// Handle godoc
// @Summary     Procesar un comando de voz
// @Description Acepta texto plano (string JSON) o un request estructurado de Alexa y responde en el formato de la skill.
// @Tags        Alexa
// @Accept      json
// @Produce     json
// @Param       body body object true "Comando de texto o request de Alexa"
// @Success     200 {object} skillResponse
// @Failure     400 {object} map[string]string
// @Failure     500 {object} skillResponse
// @Router      /api/alexa [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	// The voice contract: whatever goes wrong past parsing, the caller
	// still gets a dialogue-shaped body it can read aloud.
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "voice.http.Handle panic: %v", r)
			c.JSON(http.StatusInternalServerError,
				newSkillResponse(voice.End(voice.SpeechErrorGeneric)))
		}
	}()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el request"})
		return
	}

	switch kind(body) {
	case jsonString:
		var command string
		if err := json.Unmarshal(body, &command); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El comando no es válido"})
			return
		}
		h.handleText(c, command)
	case jsonObject:
		h.handleEnvelope(c, body)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de request no soportado: "})
	}
}

// handleText runs the free-text grammar.
func (h *handler) handleText(c *gin.Context, command string) {
	ctx := c.Request.Context()

	if strings.TrimSpace(command) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El comando no puede estar vacío"})
		return
	}

	h.l.Infof(ctx, "voice.http text command: %q", command)

	cmd := nlu.Parse(nlu.Normalize(command))
	c.JSON(http.StatusOK, newSkillResponse(h.uc.Handle(ctx, cmd)))
}

// handleEnvelope runs the structured grammar.
func (h *handler) handleEnvelope(c *gin.Context, body []byte) {
	ctx := c.Request.Context()

	var req skillRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El request no es un objeto JSON válido"})
		return
	}

	h.l.Infof(ctx, "voice.http request type: %s", req.Request.Type)

	switch req.Request.Type {
	case nlu.RequestTypeLaunch:
		cmd := nlu.Command{Intent: nlu.IntentLaunch}
		c.JSON(http.StatusOK, newSkillResponse(h.uc.Handle(ctx, cmd)))
	case nlu.RequestTypeIntent:
		c.JSON(http.StatusOK, newSkillResponse(h.uc.Handle(ctx, req.toCommand())))
	case nlu.RequestTypeSessionEnded:
		c.Status(http.StatusOK)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Tipo de request no soportado: %s", req.Request.Type),
		})
	}
}

type jsonKind int

const (
	jsonInvalid jsonKind = iota
	jsonString
	jsonObject
)

// kind inspects the first non-whitespace byte of the payload. Numbers,
// arrays, booleans and garbage all land on jsonInvalid.
func kind(body []byte) jsonKind {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return jsonInvalid
	}
	switch trimmed[0] {
	case '"':
		return jsonString
	case '{':
		return jsonObject
	default:
		return jsonInvalid
	}
}
