package uri

import (
	"strings"

	"github.com/ghettovoice/crawluri/internal/util"
)

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// isUnreserved checks the RFC 3986 unreserved rule.
func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// normalizeEscapes decodes escaped unreserved characters of the escaped string s
// and upper-cases the remaining escapes. Escaped reserved characters, like "%2F", stay escaped.
func normalizeEscapes(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			c := unhex(s[i+1])<<4 | unhex(s[i+2])
			if isUnreserved(c) {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('%')
				sb.WriteByte(upperhex[c>>4])
				sb.WriteByte(upperhex[c&15])
			}
			i += 2
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// removeDotSegments removes "." and ".." segments from the escaped path p.
// Only literal "/" separates segments. With rooted set the result always starts with "/".
func removeDotSegments(p string, rooted bool) string {
	if p == "" {
		return p
	}

	var (
		segs    []string
		lastDot bool
	)
	for _, s := range strings.Split(p, "/") {
		switch s {
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		case ".":
		default:
			segs = append(segs, s)
		}
		lastDot = s == "." || s == ".."
	}

	p = strings.Join(segs, "/")
	if rooted && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if lastDot && p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
