package ai

import (
	"testing"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/chat"
)

var testComposer = Composer{Model: "fast-model", VisionModel: "vision-model", MaxTokens: 600}

func TestBuildPlainHistory(t *testing.T) {
	history := []chat.Turn{
		{Role: chat.RoleUser, Content: "how long does cedar last"},
		{Role: chat.RoleAssistant, Content: "12-14 years on wood posts"},
	}

	req := testComposer.Build("system text", history, "and on steel posts?", nil)

	if req.System != "system text" {
		t.Fatalf("system prompt field = %q", req.System)
	}
	if req.Model != "fast-model" {
		t.Fatalf("model = %q, want the default text model", req.Model)
	}
	if req.MaxTokens != 600 {
		t.Fatalf("max tokens = %d", req.MaxTokens)
	}
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(req.Messages))
	}

	if req.Messages[0].Role != "user" || req.Messages[1].Role != "assistant" || req.Messages[2].Role != "user" {
		t.Fatalf("unexpected role order: %s %s %s", req.Messages[0].Role, req.Messages[1].Role, req.Messages[2].Role)
	}
	for i, msg := range req.Messages {
		if _, ok := msg.Content.(string); !ok {
			t.Fatalf("message %d content must be a plain string, got %T", i, msg.Content)
		}
	}
}

func TestBuildImageHistoryTurnIsStructured(t *testing.T) {
	history := []chat.Turn{
		{Role: chat.RoleUser, Content: "here are two photos", Images: []string{
			"data:image/png;base64,AAAA",
			"data:image/webp;base64,BBBB",
		}},
		{Role: chat.RoleAssistant, Content: "got them"},
	}

	req := testComposer.Build("s", history, "what do you think?", nil)

	blocks, ok := req.Messages[0].Content.([]ContentBlock)
	if !ok {
		t.Fatalf("image-bearing history turn must be a block list, got %T", req.Messages[0].Content)
	}
	if len(blocks) != 3 {
		t.Fatalf("blocks = %d, want 2 images + 1 trailing text", len(blocks))
	}
	if blocks[0].Type != "image" || blocks[1].Type != "image" {
		t.Fatalf("leading blocks must be images, got %s %s", blocks[0].Type, blocks[1].Type)
	}
	if blocks[0].Source.MediaType != "image/png" || blocks[0].Source.Data != "AAAA" {
		t.Fatalf("unexpected first image source: %+v", blocks[0].Source)
	}
	if blocks[1].Source.MediaType != "image/webp" {
		t.Fatalf("unexpected second media type: %s", blocks[1].Source.MediaType)
	}
	if blocks[2].Type != "text" || blocks[2].Text != "here are two photos" {
		t.Fatalf("trailing block must carry the turn text, got %+v", blocks[2])
	}

	// History images alone never switch the model.
	if req.Model != "fast-model" {
		t.Fatalf("model = %q, image-bearing history must not select the vision variant", req.Model)
	}
}

func TestBuildCurrentImagesSelectVisionModel(t *testing.T) {
	req := testComposer.Build("s", nil, "look at this", []string{"data:image/gif;base64,CCCC"})

	if req.Model != "vision-model" {
		t.Fatalf("model = %q, want the vision variant", req.Model)
	}

	blocks, ok := req.Messages[0].Content.([]ContentBlock)
	if !ok || len(blocks) != 2 {
		t.Fatalf("expected 1 image block + 1 text block, got %#v", req.Messages[0].Content)
	}
	if blocks[0].Source.MediaType != "image/gif" {
		t.Fatalf("media type = %s, want image/gif", blocks[0].Source.MediaType)
	}
}

func TestDecodeImagePayloadDefaults(t *testing.T) {
	mediaType, data := decodeImagePayload("data:image/jpeg;base64,DDDD")
	if mediaType != "image/jpeg" || data != "DDDD" {
		t.Fatalf("jpeg data uri: got %s %s", mediaType, data)
	}

	// Bare base64 with no prefix falls back to JPEG.
	mediaType, data = decodeImagePayload("EEEE")
	if mediaType != "image/jpeg" || data != "EEEE" {
		t.Fatalf("bare payload: got %s %s", mediaType, data)
	}

	// Unrecognized media types fall back to JPEG as well.
	mediaType, _ = decodeImagePayload("data:image/tiff;base64,FFFF")
	if mediaType != "image/jpeg" {
		t.Fatalf("unrecognized type: got %s", mediaType)
	}
}
