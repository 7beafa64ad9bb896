package vendordoc

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var stripPolicy = bluemonday.StrictPolicy()

// markupTag matches the inline and block HTML elements research prose arrives
// with. Anything else between angle brackets is ordinary text.
var markupTag = regexp.MustCompile(`(?i)</?(a|abbr|b|blockquote|br|cite|code|div|em|h[1-6]|i|li|mark|ol|p|q|s|script|small|span|strong|style|sub|sup|u|ul)(\s[^<>]*)?/?>`)

var lineBreakTag = regexp.MustCompile(`(?i)^(<br\s*/?>|</(p|div|li|h[1-6])>)$`)

// PlainText removes HTML tags and decodes entities in research prose. Text
// outside recognized tags is kept as written, including line breaks and
// stray angle brackets.
func PlainText(s string) string {
	tags := markupTag.FindAllStringIndex(s, -1)
	if len(tags) == 0 {
		return html.UnescapeString(s)
	}

	var sb strings.Builder
	last := 0
	for _, loc := range tags {
		sb.WriteString(escapeBrackets(s[last:loc[0]]))
		tag := s[loc[0]:loc[1]]
		sb.WriteString(tag)
		if lineBreakTag.MatchString(tag) {
			sb.WriteString("\n")
		}
		last = loc[1]
	}
	sb.WriteString(escapeBrackets(s[last:]))

	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(sb.String())))
}

func escapeBrackets(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
