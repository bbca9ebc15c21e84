package options

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// maxSanitizePasses bounds the sanitize/decode loop for nested entity
// escaping.
const maxSanitizePasses = 8

// SanitizeLabel strips markup from a user-typed label and collapses
// whitespace. Entities are decoded so "Q&A" stays "Q&A"; decoded text is
// sanitized again until it stops changing, so escaped markup never comes out
// as real tags.
func SanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	policy := labelSanitizer()
	current := trimmed
	for pass := 0; pass < maxSanitizePasses; pass++ {
		sanitized := policy.Sanitize(current)
		decoded := html.UnescapeString(sanitized)
		if decoded == current {
			return strings.Join(strings.Fields(decoded), " ")
		}
		current = decoded
	}
	// Still changing: keep the escaped form.
	return strings.Join(strings.Fields(policy.Sanitize(current)), " ")
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
