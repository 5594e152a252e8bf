// Package uri resolves, normalizes and classifies URIs for crawlers and fetchers.
//
// # Overview
//
// The package turns a possibly relative URL plus an optional base URL into a canonical
// absolute [URI], renders it to a string or a filesystem path, and answers questions
// about it: which protocol it uses, whether its host equals or lies within a domain,
// whether two URIs share a host.
//
// Lexical work (tokenizing, RFC 3986 reference resolution, syntax normalization and
// rendering) is delegated to a [Grammar]. The default [NetGrammar] is built on
// [net/url] and [github.com/PuerkitoBio/purell].
//
// # Resolution
//
//	u, err := uri.Resolve("", "HTTP://Example.COM:80")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u) // http://example.com/
//
//	u, err = uri.Resolve("http://example.com/a/b", "../c?q=1")
//	// http://example.com/c?q=1
//
// Without a base the target must be absolute. A URI without path and query gets a
// trailing slash, so "http://example.com" and "http://example.com/" produce the same
// value and the same canonical string. Use [NewResolver] to plug in another [Grammar]
// or a logger.
//
// # Rendering
//
// [ToString] renders the canonical string form. [FilePath] maps the canonical
// string to a relative filesystem path for on-disk mirrors:
//
//	p, _ := uri.FilePath(u, &uri.PathOptions{Separator: '\\', ReplaceColon: true})
//	// http_\example.com\c?q=1
//
// # Classification
//
// [IsProtocol], [IsHTTP] and [IsFTP] test the scheme. [HostEqualsDomain] and
// [HostInDomain] compare the host with a domain ignoring case; [HostInDomain] matches
// on label boundaries only. [Domains] holds validated domain lists. [HostsEqual]
// compares two hosts byte by byte.
// Predicates never fail: a nil URI or a missing field simply yields false.
//
// # Errors
//
// Every error returned by the package matches one of [ErrInvalidInput], [ErrParse],
// [ErrResolution], [ErrNormalization] or [ErrSerialization] with [errors.Is].
// On error no value is returned.
//
// # Thread Safety
//
// [Resolver] is safe for concurrent use. [URI] values have no mutating methods except
// [URI.UnmarshalText]; share them between goroutines only with external synchronization
// or use [URI.Clone].
package uri
