package pipeline

import (
	"regexp"
	"strings"
)

var (
	reScriptBlock = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	reMarkupTag   = regexp.MustCompile(`<[^>]{0,200}>`)
	reJSProto     = regexp.MustCompile(`(?i)javascript\s*:`)
)

// sanitizeText strips markup and script-like content from free text and caps
// its length in runes. OCR output should never contain markup; when it does,
// the text came from somewhere it should not have.
func sanitizeText(s string, maxLen int) string {
	s = reScriptBlock.ReplaceAllString(s, "")
	s = reMarkupTag.ReplaceAllString(s, "")
	s = reJSProto.ReplaceAllString(s, "")
	if maxLen > 0 {
		if runes := []rune(s); len(runes) > maxLen {
			s = string(runes[:maxLen])
		}
	}
	return strings.TrimSpace(s)
}
