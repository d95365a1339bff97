package chat

import (
	"fmt"
	"strings"
)

// Keyword triggers operate on the raw prompt of the current turn only, not
// on conversation history. A visitor who asked about price two turns ago
// and now says "ok" does not get the suffix again.
var (
	quoteKeywords  = []string{"quote", "price", "cost", "estimate", "schedule", "when", "how much"}
	socialKeywords = []string{"facebook", "social", "reviews", "find you"}
)

// Augmenter appends business call-to-action suffixes to model replies.
type Augmenter struct {
	Phone    string
	Email    string
	Facebook string
}

// Augment returns rawText with any triggered suffixes appended. Both
// suffixes can apply to the same reply; the quote suffix always comes first
// and each is separated by a blank line.
func (a Augmenter) Augment(rawText, originalUserText string) string {
	lowered := strings.ToLower(originalUserText)

	out := rawText
	if containsAny(lowered, quoteKeywords) {
		out += fmt.Sprintf("\n\n📞 **Ready to move forward?** Call or text us at **%s** or email **%s** for fastest response!", a.Phone, a.Email)
	}
	if containsAny(lowered, socialKeywords) {
		out += fmt.Sprintf("\n\n📱 **Find us on Facebook:** %s or search for us on Google!", a.Facebook)
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
