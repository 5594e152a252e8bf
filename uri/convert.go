package uri

import (
	"path/filepath"
	"runtime"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/crawluri/internal/errorutil"
)

// ToString renders the URI to its canonical string form through the grammar engine
// that produced it.
// The error matches [ErrSerialization], also when u is nil.
func ToString(u *URI) (string, error) {
	if u == nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrSerialization, errNilURL))
	}
	s, err := u.grammar().Serialize(&u.url)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrSerialization, err))
	}
	return s, nil
}

// PathOptions control how [FilePath] maps a URI to a filesystem path.
type PathOptions struct {
	// Separator is the directory separator.
	// If 0, [filepath.Separator] is used.
	Separator byte
	// ReplaceColon replaces ':' with '_' for filesystems that reject it in file names.
	ReplaceColon bool
}

// DefaultPathOptions returns the path options of the current platform.
func DefaultPathOptions() *PathOptions {
	return &PathOptions{
		Separator:    filepath.Separator,
		ReplaceColon: runtime.GOOS == "windows",
	}
}

func (o *PathOptions) sep() string {
	if o == nil || o.Separator == 0 {
		return string(filepath.Separator)
	}
	return string(o.Separator)
}

// FilePath converts the URI into a relative filesystem path suitable
// for mirroring fetched resources on disk.
//
// The canonical string (see [ToString]) has every "//" replaced with the separator first,
// then every remaining "/". With [PathOptions.ReplaceColon] ':' becomes '_'.
// Options are optional, if nil, [DefaultPathOptions] are used.
func FilePath(u *URI, opts *PathOptions) (string, error) {
	s, err := ToString(u)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if opts == nil {
		opts = DefaultPathOptions()
	}

	sep := opts.sep()
	s = strings.ReplaceAll(s, "//", sep)
	s = strings.ReplaceAll(s, "/", sep)
	if opts.ReplaceColon {
		s = strings.ReplaceAll(s, ":", "_")
	}
	return s, nil
}
