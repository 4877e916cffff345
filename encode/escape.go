package encode

import "strings"

var attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")

// EscapeText escapes s for use as a text node: '&', '<' and '>' everywhere,
// plus a leading and a trailing space, tab, LF or CR as character
// references so that the boundary whitespace survives parsers which trim
// it. Interior whitespace and '"' are left alone.
func EscapeText(s string) string {
	n := len(s)
	if n == 0 {
		return s
	}
	if !strings.ContainsAny(s, "&<>") && wsRef(s[0]) == "" && wsRef(s[n-1]) == "" {
		return s
	}
	var b strings.Builder
	b.Grow(n + 8)
	for i := 0; i < n; i++ {
		c := s[i]
		if i == 0 || i == n-1 {
			if ref := wsRef(c); ref != "" {
				b.WriteString(ref)
				continue
			}
		}
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapeAttr escapes s for use inside a double quoted attribute value:
// only '&' and '"'.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func wsRef(c byte) string {
	switch c {
	case ' ':
		return "&#x20;"
	case '\t':
		return "&#x09;"
	case '\n':
		return "&#x0a;"
	case '\r':
		return "&#x0d;"
	}
	return ""
}
