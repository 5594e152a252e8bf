package uri

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/crawluri/internal/constraints"
)

// URI is a structured URI value.
//
// Values produced by [Resolve], [Parse] and [Resolver.Resolve] are absolute and syntactically
// normalized. A URI owns its data: accessors return immutable views
// that stay valid as long as the caller keeps them.
type URI struct {
	url url.URL
	gr  Grammar
}

// FromURL wraps a copy of u without resolution or normalization.
// It is intended for callers that already hold a parsed [url.URL];
// the resulting value may be relative or partially populated.
// FromURL returns nil if u is nil.
func FromURL(u *url.URL) *URI {
	if u == nil {
		return nil
	}
	return &URI{url: *cloneURL(u)}
}

// Parse parses an absolute URI from the given input s (string or []byte).
// It is a shortcut for [Resolve] without a base.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(Resolve("", string(s)))
}

func (u *URI) grammar() Grammar {
	if u == nil || u.gr == nil {
		return defGrammar
	}
	return u.gr
}

// Scheme returns the URI scheme or an empty string if it is absent.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.url.Scheme
}

// Host returns the host without port and IPv6 brackets,
// or an empty string if it is absent.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	return u.url.Hostname()
}

// Port returns the port or an empty string if it is absent.
func (u *URI) Port() string {
	if u == nil {
		return ""
	}
	return u.url.Port()
}

// Path returns the decoded path. Opaque URIs (mailto:, urn:, ...) return the opaque part.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	if u.url.Opaque != "" {
		return u.url.Opaque
	}
	return u.url.Path
}

// Segments returns the escaped path split into segments.
// Escaped slashes ("%2F") do not split segments.
// An empty path has no segments, the root path "/" has one empty segment.
func (u *URI) Segments() []string {
	if u == nil {
		return nil
	}
	p := u.url.Opaque
	if p == "" {
		p = u.url.EscapedPath()
	}
	if p == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}

// Query returns the raw query and whether it is present.
// A bare "?" is a present, empty query.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.url.RawQuery, u.url.ForceQuery || u.url.RawQuery != ""
}

// Fragment returns the decoded fragment and whether it is present.
// An empty fragment is reported as absent.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.url.Fragment, u.url.Fragment != ""
}

// IsAbs reports whether the URI has a scheme.
func (u *URI) IsAbs() bool { return u != nil && u.url.IsAbs() }

// URL returns a copy of the underlying [url.URL].
func (u *URI) URL() *url.URL {
	if u == nil {
		return nil
	}
	return cloneURL(&u.url)
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	return &URI{url: *cloneURL(&u.url), gr: u.gr}
}

func cloneURL(u *url.URL) *url.URL {
	u2 := *u
	if u.User != nil {
		if pwd, ok := u.User.Password(); ok {
			u2.User = url.UserPassword(u.User.Username(), pwd)
		} else {
			u2.User = url.User(u.User.Username())
		}
	}
	return &u2
}

// String returns the canonical string form of the URI.
// It returns an empty string if the URI can not be serialized, see [ToString].
func (u *URI) String() string {
	s, _ := ToString(u)
	return s
}

// Format implements [fmt.Formatter] for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			type hideMethods URI
			type URI hideMethods
			fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
			return
		}
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(u.String())
}

// Equal reports whether val is a URI with the same canonical string form.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	s1, err1 := ToString(u)
	s2, err2 := ToString(other)
	return err1 == nil && err2 == nil && s1 == s2
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	s, err := ToString(u)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is resolved as an absolute URI, see [Parse].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
