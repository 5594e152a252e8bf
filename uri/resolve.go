package uri

import (
	"context"
	"log/slog"
	"net/url"

	"braces.dev/errtrace"

	"github.com/ghettovoice/crawluri/internal/errorutil"
	"github.com/ghettovoice/crawluri/internal/log"
)

var defGrammar Grammar = NetGrammar{}

// ResolverOptions are the options of a [Resolver].
type ResolverOptions struct {
	// Grammar is the grammar engine.
	// If nil, a [NetGrammar] is used.
	Grammar Grammar
	// Logger is the logger. Failed resolutions are logged at debug level.
	// If nil, a noop logger is used.
	Logger *slog.Logger
}

func (o *ResolverOptions) grammar() Grammar {
	if o == nil || o.Grammar == nil {
		return defGrammar
	}
	return o.Grammar
}

func (o *ResolverOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

// Resolver turns URI references into normalized absolute [URI] values.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	gr  Grammar
	log *slog.Logger
}

// NewResolver creates a new [Resolver].
// Options are optional, if nil, default values are used (see [ResolverOptions]).
func NewResolver(opts *ResolverOptions) *Resolver {
	return &Resolver{
		gr:  opts.grammar(),
		log: opts.log(),
	}
}

var defResolver = NewResolver(nil)

// Resolve resolves target against base with the default [Resolver].
// See [Resolver.Resolve].
func Resolve(base, target string) (*URI, error) {
	return errtrace.Wrap2(defResolver.Resolve(base, target))
}

// Resolve resolves the URI reference target against the optional base
// and returns a normalized absolute [URI]. An empty base means there is no base,
// in which case target itself must be absolute.
//
// Without a base, a URI that has neither a path nor a query gets a trailing "/" appended,
// so "http://example.com" and "http://example.com/" resolve to the same value.
//
// Errors match one of [ErrInvalidInput], [ErrParse], [ErrResolution] or [ErrNormalization].
func (r *Resolver) Resolve(base, target string) (*URI, error) {
	u, err := r.resolve(base, target)
	if err != nil {
		r.log.LogAttrs(context.Background(), slog.LevelDebug, "failed to resolve URI",
			slog.String("base", base),
			slog.String("target", target),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "URI resolved",
		slog.String("base", base),
		slog.String("target", target),
		slog.Any("url", &u.url),
	)
	return u, nil
}

func (r *Resolver) resolve(base, target string) (*URI, error) {
	if target == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty target URI"))
	}

	var (
		abs *url.URL
		err error
	)
	if base == "" {
		abs, err = r.parseAbs(target)
	} else {
		abs, err = r.combine(base, target)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if err := r.gr.Normalize(abs); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNormalization, err))
	}

	if base == "" && isBare(abs) {
		if abs, err = r.canonicalize(target); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return &URI{url: *abs, gr: r.gr}, nil
}

func (r *Resolver) parseAbs(s string) (*url.URL, error) {
	u, err := r.gr.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrParse, err))
	}
	if u == nil || !u.IsAbs() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrParse, errNotAbsolute))
	}
	return u, nil
}

func (r *Resolver) combine(base, target string) (*url.URL, error) {
	ref, err := r.gr.Parse(target)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrParse, errorutil.JoinPrefix("target", err)))
	}
	bu, err := r.gr.Parse(base)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrParse, errorutil.JoinPrefix("base", err)))
	}
	abs, err := r.gr.Combine(bu, ref)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrResolution, err))
	}
	if abs == nil || !abs.IsAbs() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrResolution, errNotAbsolute))
	}
	return abs, nil
}

// canonicalize re-parses target with a trailing slash.
func (r *Resolver) canonicalize(target string) (*url.URL, error) {
	u, err := r.gr.Parse(target + "/")
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNormalization, err))
	}
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNormalization, errNilURL))
	}
	if err := r.gr.Normalize(u); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNormalization, err))
	}
	return u, nil
}

// isBare reports whether u has neither a path nor a query.
func isBare(u *url.URL) bool {
	return u.Opaque == "" && u.Path == "" && u.RawQuery == "" && !u.ForceQuery
}
