package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination ../internal/testutil/grammarmock/grammar.go -package grammarmock . Grammar

import (
	"net/url"
	"strings"

	"braces.dev/errtrace"
	"github.com/PuerkitoBio/purell"
)

// Grammar is the lexical URI engine the resolver delegates to.
// It owns tokenizing, RFC 3986 reference resolution, syntax normalization and rendering.
// Implementations must not keep references to the passed values.
type Grammar interface {
	// Parse parses a URI reference. The result may be relative.
	Parse(s string) (*url.URL, error)
	// Normalize normalizes the URI syntax in place.
	Normalize(u *url.URL) error
	// Combine resolves the reference ref against the absolute base
	// and returns a new value. Neither argument is modified.
	Combine(base, ref *url.URL) (*url.URL, error)
	// Serialize renders the URI to its canonical string form.
	Serialize(u *url.URL) (string, error)
}

// DefaultNormalization holds the [purell] flags [NetGrammar.Normalize] applies to
// the scheme, authority, query and fragment. The path is normalized separately
// on its escaped form.
const DefaultNormalization = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagUppercaseEscapes |
	purell.FlagDecodeUnnecessaryEscapes |
	purell.FlagEncodeNecessaryEscapes |
	purell.FlagRemoveDefaultPort

// NetGrammar implements [Grammar] on top of [net/url] and [purell].
type NetGrammar struct{}

// Parse parses s with [url.Parse].
func (NetGrammar) Parse(s string) (*url.URL, error) {
	if s == "" {
		return nil, errtrace.Wrap(errEmptyText)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// Normalize lower-cases scheme and host, strips default ports and removes dot segments.
// In the path, escaped unreserved characters are decoded and other escapes are upper-cased;
// escaped reserved characters like "%2F" are kept as is. A present empty query is kept.
// The normalized form is parsed back so that every field of u agrees with it.
func (g NetGrammar) Normalize(u *url.URL) error {
	if u == nil {
		return errtrace.Wrap(errNilURL)
	}

	// purell renders the decoded path and would turn "%2F" into "/"
	rest := *u
	rest.Path, rest.RawPath = "", ""
	nu, err := g.Parse(purell.NormalizeURL(&rest, DefaultNormalization))
	if err != nil {
		return errtrace.Wrap(err)
	}
	nu.ForceQuery = u.ForceQuery && nu.RawQuery == ""
	nu.OmitHost = u.OmitHost

	if u.Opaque == "" {
		ep := u.EscapedPath()
		ep = removeDotSegments(normalizeEscapes(ep), nu.Host != "" || strings.HasPrefix(ep, "/"))
		if err := setEscapedPath(nu, ep); err != nil {
			return errtrace.Wrap(err)
		}
	}
	*u = *nu
	return nil
}

// setEscapedPath sets the path of u from its escaped form ep.
func setEscapedPath(u *url.URL, ep string) error {
	p, err := url.PathUnescape(ep)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u.Path, u.RawPath = p, ""
	if u.EscapedPath() != ep {
		u.RawPath = ep
	}
	return nil
}

// Combine resolves ref against base per RFC 3986, section 5.2.
// A relative-path reference against an opaque base, like "x" against "mailto:a@b",
// is merged with the opaque part of the base.
func (NetGrammar) Combine(base, ref *url.URL) (*url.URL, error) {
	if base == nil || ref == nil {
		return nil, errtrace.Wrap(errNilURL)
	}
	if !base.IsAbs() {
		return nil, errtrace.Wrap(errRelBase)
	}
	if base.Opaque != "" && ref.Scheme == "" && ref.Host == "" && ref.User == nil &&
		ref.Opaque == "" && ref.Path != "" {
		return errtrace.Wrap2(mergeOpaque(base, ref))
	}
	return base.ResolveReference(ref), nil
}

func mergeOpaque(base, ref *url.URL) (*url.URL, error) {
	u := *ref
	u.Scheme = base.Scheme
	ep := ref.EscapedPath()
	if !strings.HasPrefix(ep, "/") {
		if i := strings.LastIndexByte(base.Opaque, '/'); i >= 0 {
			ep = base.Opaque[:i+1] + ep
		}
	}
	ep = removeDotSegments(ep, false)
	if !strings.HasPrefix(ep, "/") {
		u.Opaque, u.Path, u.RawPath = ep, "", ""
		return &u, nil
	}
	u.OmitHost = true
	if err := setEscapedPath(&u, ep); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &u, nil
}

// Serialize renders u with [url.URL.String].
func (NetGrammar) Serialize(u *url.URL) (string, error) {
	if u == nil {
		return "", errtrace.Wrap(errNilURL)
	}
	return u.String(), nil
}
