package uri

import "github.com/ghettovoice/crawluri/internal/util"

// Well-known protocol names.
const (
	ProtoHTTP  = "http"
	ProtoHTTPS = "https"
	ProtoFTP   = "ftp"
)

// DomainSeparator separates domain labels.
const DomainSeparator = '.'

// IsProtocol reports whether u has a non-empty scheme equal to name, ignoring case.
func IsProtocol(u *URI, name string) bool {
	s := u.Scheme()
	return s != "" && util.EqFold(s, name)
}

// IsHTTP reports whether u is an http or https URI.
func IsHTTP(u *URI) bool { return IsProtocol(u, ProtoHTTP) || IsProtocol(u, ProtoHTTPS) }

// IsFTP reports whether u is an ftp URI.
func IsFTP(u *URI) bool { return IsProtocol(u, ProtoFTP) }

// HostEqualsDomain reports whether the host of u equals domain, ignoring case.
func HostEqualsDomain(u *URI, domain string) bool {
	h := u.Host()
	return domain != "" && h != "" && len(h) == len(domain) && util.EqFold(h, domain)
}

// HostInDomain reports whether the host of u is domain or lies within it, ignoring case.
//
// Matching happens on label boundaries: "www.example.com" is in "example.com",
// "evilexample.com" is not. A domain with a leading dot, like ".example.com",
// matches any host ending with it.
func HostInDomain(u *URI, domain string) bool {
	h := u.Host()
	if domain == "" || h == "" {
		return false
	}
	off := len(h) - len(domain)
	if off < 0 {
		return false
	}
	if domain[0] != DomainSeparator && off > 0 && h[off-1] != DomainSeparator {
		return false
	}
	return util.HasSuffixFold(h, domain)
}

// HostEqualsAnyDomain reports whether [HostEqualsDomain] holds for at least one of domains.
func HostEqualsAnyDomain(u *URI, domains []string) bool {
	for _, d := range domains {
		if HostEqualsDomain(u, d) {
			return true
		}
	}
	return false
}

// HostInAnyDomain reports whether [HostInDomain] holds for at least one of domains.
func HostInAnyDomain(u *URI, domains []string) bool {
	for _, d := range domains {
		if HostInDomain(u, d) {
			return true
		}
	}
	return false
}

// HostsEqual reports whether both URIs have the same non-empty host.
// Unlike the domain predicates it compares bytes exactly:
// hosts of resolved URIs are already lower-cased.
func HostsEqual(u1, u2 *URI) bool {
	h1, h2 := u1.Host(), u2.Host()
	return h1 != "" && h1 == h2
}
