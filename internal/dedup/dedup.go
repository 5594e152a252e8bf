// Package dedup tracks canonical URIs that have already been seen.
package dedup

import (
	"braces.dev/errtrace"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ghettovoice/crawluri/uri"
)

// DefaultSize is the set capacity used when a non-positive size is requested.
const DefaultSize = 4096

// Set is a bounded set of canonical URI strings.
// When full, the least recently seen entry is evicted.
// Set is safe for concurrent use.
type Set struct {
	cache *lru.Cache[string, struct{}]
}

// New creates a new [Set] holding up to size entries.
func New(size int) (*Set, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Set{cache: c}, nil
}

// Seen reports whether the canonical form of u was recorded before and records it otherwise.
// A hit marks the entry as recently seen. URIs that can not be serialized are never recorded.
func (s *Set) Seen(u *uri.URI) bool {
	key, err := uri.ToString(u)
	if err != nil {
		return false
	}
	ok, _ := s.cache.ContainsOrAdd(key, struct{}{})
	if ok {
		s.cache.Get(key)
	}
	return ok
}

// Len returns the number of recorded entries.
func (s *Set) Len() int { return s.cache.Len() }
