package ai

import (
	"strings"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/chat"
)

// Composer shapes transcript history into an upstream model request.
type Composer struct {
	Model       string
	VisionModel string
	MaxTokens   int
}

// Build assembles the full request: system prompt as a top-level field,
// prior turns as role/content pairs, and the current user content last.
// The vision model variant is selected iff the current turn carries images;
// image-bearing history alone stays on the default model.
func (c Composer) Build(systemPrompt string, history []chat.Turn, currentText string, currentImages []string) *ModelRequest {
	messages := make([]Message, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case chat.RoleUser:
			messages = append(messages, Message{Role: "user", Content: userContent(turn.Content, turn.Images)})
		case chat.RoleAssistant:
			messages = append(messages, Message{Role: "assistant", Content: turn.Content})
		}
	}
	messages = append(messages, Message{Role: "user", Content: userContent(currentText, currentImages)})

	model := c.Model
	if len(currentImages) > 0 {
		model = c.VisionModel
	}

	return &ModelRequest{
		Model:     model,
		MaxTokens: c.MaxTokens,
		System:    systemPrompt,
		Messages:  messages,
	}
}

// userContent returns plain text for image-free turns, otherwise an ordered
// block list: one image block per attachment followed by one text block.
func userContent(text string, images []string) any {
	if len(images) == 0 {
		return text
	}

	blocks := make([]ContentBlock, 0, len(images)+1)
	for _, img := range images {
		mediaType, data := decodeImagePayload(img)
		blocks = append(blocks, ContentBlock{
			Type: "image",
			Source: &ImageSource{
				Type:      "base64",
				MediaType: mediaType,
				Data:      data,
			},
		})
	}
	blocks = append(blocks, ContentBlock{Type: "text", Text: text})
	return blocks
}

// decodeImagePayload splits a data URI into media type and base64 body.
// Payloads without a recognized prefix are treated as bare JPEG base64.
func decodeImagePayload(payload string) (string, string) {
	const defaultMediaType = "image/jpeg"

	if !strings.HasPrefix(payload, "data:") {
		return defaultMediaType, payload
	}

	rest := strings.TrimPrefix(payload, "data:")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return defaultMediaType, payload
	}

	data := rest[semi+len(";base64,"):]
	switch rest[:semi] {
	case "image/png":
		return "image/png", data
	case "image/webp":
		return "image/webp", data
	case "image/gif":
		return "image/gif", data
	default:
		return defaultMediaType, data
	}
}
