package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/crawluri/internal/config"
	"github.com/ghettovoice/crawluri/internal/dedup"
	"github.com/ghettovoice/crawluri/internal/errorutil"
	"github.com/ghettovoice/crawluri/internal/log"
	"github.com/ghettovoice/crawluri/uri"
)

const errSomeFailed errorutil.Error = "some URLs could not be processed"

type options struct {
	base       string
	configPath string
	domains    []string
	exact      []string
	unique     bool
	cacheSize  int
	dev        bool
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "crawluri [flags] [URL...]",
		Short:         "Resolve, render and classify URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Def
			if opts.dev {
				logger = log.Dev
			}
			if opts.configPath != "" {
				cfg, err := config.Load(opts.configPath)
				if err != nil {
					return errtrace.Wrap(err)
				}
				logger.LogAttrs(cmd.Context(), slog.LevelDebug, "config loaded",
					slog.String("path", opts.configPath),
					slog.Any("config", log.FmtValue(cfg, false)),
				)
				opts.merge(cfg, cmd)
			}
			if len(args) == 0 {
				return errtrace.Wrap(run(cmd.Context(), &opts, in, out, logger))
			}
			return errtrace.Wrap(run(cmd.Context(), &opts, strings.NewReader(strings.Join(args, "\n")), out, logger))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.base, "base", "", "base URL applied to every target")
	fs.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	fs.StringSliceVar(&opts.domains, "domain", nil, "domain the host may lie within (repeatable)")
	fs.StringSliceVar(&opts.exact, "exact", nil, "domain the host may equal (repeatable)")
	fs.BoolVar(&opts.unique, "unique", false, "skip URLs whose canonical form was already printed")
	fs.IntVar(&opts.cacheSize, "cache-size", dedup.DefaultSize, "number of canonical URLs remembered by --unique")
	fs.BoolVar(&opts.dev, "dev", false, "use the developer logger")
	return cmd
}

// merge applies cfg to the options not set on the command line.
// Domain lists are concatenated.
func (o *options) merge(cfg *config.Config, cmd *cobra.Command) {
	fs := cmd.Flags()
	if !fs.Changed("base") {
		o.base = cfg.Base
	}
	if !fs.Changed("unique") {
		o.unique = cfg.Unique
	}
	if !fs.Changed("cache-size") && cfg.CacheSize > 0 {
		o.cacheSize = cfg.CacheSize
	}
	o.domains = append(o.domains, cfg.Domains...)
	o.exact = append(o.exact, cfg.Exact...)
}

func run(ctx context.Context, opts *options, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	inDomains, inErr := uri.ParseDomains(opts.domains...)
	exDomains, exErr := uri.ParseDomains(opts.exact...)
	if err := errorutil.Join(inErr, exErr); err != nil {
		return errtrace.Wrap(err)
	}

	var (
		seen *dedup.Set
		err  error
	)
	if opts.unique {
		if seen, err = dedup.New(opts.cacheSize); err != nil {
			return errtrace.Wrap(err)
		}
	}

	r := uri.NewResolver(&uri.ResolverOptions{Logger: logger})
	failed := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		target := strings.TrimSpace(sc.Text())
		if target == "" {
			continue
		}

		u, err := r.Resolve(opts.base, target)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "skip URL", slog.String("url", target), slog.Any("error", err))
			failed++
			continue
		}
		if seen != nil && seen.Seen(u) {
			logger.LogAttrs(ctx, slog.LevelDebug, "duplicate URL", slog.Any("uri", u))
			continue
		}

		line, err := describe(u, inDomains, exDomains)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "skip URL", slog.Any("uri", u), slog.Any("error", err))
			failed++
			continue
		}
		if _, err := io.WriteString(out, line); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if err := sc.Err(); err != nil {
		return errtrace.Wrap(err)
	}
	if failed > 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(errSomeFailed, "%d failed", failed))
	}
	return nil
}

func describe(u *uri.URI, inDomains, exDomains uri.Domains) (string, error) {
	s, err := uri.ToString(u)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	p, err := uri.FilePath(u, nil)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	class := "other"
	switch {
	case uri.IsHTTP(u):
		class = "http"
	case uri.IsFTP(u):
		class = "ftp"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%t\t%t\n", s, p, class, inDomains.MatchIn(u), exDomains.MatchEqual(u)), nil
}
