package uri_test

import (
	"testing"

	"github.com/ghettovoice/crawluri/uri"
)

func mustParse(t *testing.T, s string) *uri.URI {
	t.Helper()

	u, err := uri.Parse(s)
	if err != nil {
		t.Fatalf("uri.Parse(%q) error = %v, want nil", s, err)
	}
	return u
}
