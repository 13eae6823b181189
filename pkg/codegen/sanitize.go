package codegen

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Braces are encoded so Angular reads user text literally instead of as an
// interpolation.
var braceEscaper = strings.NewReplacer("{", "&#123;", "}", "&#125;")

// markupText strips tags from user text and escapes it for use inside HTML
// element content and double-quoted attributes of an Angular template.
func markupText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return braceEscaper.Replace(strings.TrimSpace(textSanitizer().Sanitize(trimmed)))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
