package chat_test

import (
	"strings"
	"testing"

	chat "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
)

var testAugmenter = chat.Augmenter{
	Phone:    "832-280-5783",
	Email:    "admin@kingwoodfencing.com",
	Facebook: "www.facebook.com/astrooutdoordesigns",
}

func TestAugmentNoKeywordsUnchanged(t *testing.T) {
	raw := "A standard privacy fence uses cedar pickets on a pine frame."
	got := testAugmenter.Augment(raw, "tell me about your fence build")
	if got != raw {
		t.Fatalf("reply without trigger keywords must pass through unchanged, got %q", got)
	}
}

func TestAugmentQuoteKeywordAppendsOnce(t *testing.T) {
	got := testAugmenter.Augment("Roughly $4,680 for the footage.", "what's your price for 100 feet")
	if !strings.HasSuffix(got, "for fastest response!") {
		t.Fatalf("expected call-to-action suffix at the end, got %q", got)
	}
	if strings.Count(got, testAugmenter.Phone) != 1 {
		t.Fatalf("phone number must appear exactly once, got %q", got)
	}
	if strings.Contains(got, testAugmenter.Facebook) {
		t.Fatalf("social suffix must not trigger, got %q", got)
	}
}

func TestAugmentBothSuffixesOrdered(t *testing.T) {
	got := testAugmenter.Augment("Sure.", "price please, and are you on facebook?")

	quoteIdx := strings.Index(got, testAugmenter.Phone)
	socialIdx := strings.Index(got, testAugmenter.Facebook)
	if quoteIdx < 0 || socialIdx < 0 {
		t.Fatalf("expected both suffixes, got %q", got)
	}
	if quoteIdx > socialIdx {
		t.Fatalf("quote suffix must precede social suffix, got %q", got)
	}
	if strings.Count(got, "\n\n") != 2 {
		t.Fatalf("each suffix must be separated by a blank line, got %q", got)
	}
}

func TestAugmentCaseInsensitive(t *testing.T) {
	got := testAugmenter.Augment("Sure.", "HOW MUCH would that run me?")
	if !strings.Contains(got, testAugmenter.Phone) {
		t.Fatalf("keyword match must be case-insensitive, got %q", got)
	}
}

func TestAugmentSocialOnly(t *testing.T) {
	got := testAugmenter.Augment("We post our work regularly.", "where can i find you for reviews")
	if !strings.Contains(got, testAugmenter.Facebook) {
		t.Fatalf("expected social suffix, got %q", got)
	}
	if strings.Contains(got, testAugmenter.Phone) {
		t.Fatalf("quote suffix must not trigger, got %q", got)
	}
}
