package uri

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/crawluri/internal/errorutil"
	"github.com/ghettovoice/crawluri/internal/util"
)

// Domains is an ordered list of domains used by the host predicates.
type Domains []string

// ParseDomains builds a domain list from raw entries.
//
// Entries are trimmed; empty entries and entries that are not valid DNS names fail
// with [ErrInvalidInput]. A leading dot is kept, see [HostInDomain].
// Duplicates, compared ignoring case, are dropped, keeping the first occurrence.
func ParseDomains(list ...string) (Domains, error) {
	var (
		ds   = make(Domains, 0, len(list))
		seen = make(map[string]struct{}, len(list))
		errs []error
	)
	for i, raw := range list {
		d := util.TrimSP(raw)
		if err := validateDomain(d); err != nil {
			errs = append(errs, fmt.Errorf("entry %d %q: %w", i, raw, err))
			continue
		}
		k := util.LCase(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ds = append(ds, d)
	}
	if len(errs) > 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidInput, errorutil.JoinPrefix("invalid domains", errs...)))
	}
	return ds, nil
}

const (
	errEmptyDomain   Error = "empty domain"
	errInvalidDomain Error = "not a domain name"
)

func validateDomain(d string) error {
	name := strings.TrimPrefix(d, string(DomainSeparator))
	if name == "" || name == "." {
		return errEmptyDomain
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return errInvalidDomain
	}
	return nil
}

// MatchEqual reports whether the host of u equals one of the domains.
// See [HostEqualsAnyDomain].
func (ds Domains) MatchEqual(u *URI) bool { return HostEqualsAnyDomain(u, ds) }

// MatchIn reports whether the host of u lies within one of the domains.
// See [HostInAnyDomain].
func (ds Domains) MatchIn(u *URI) bool { return HostInAnyDomain(u, ds) }
