// Command crawluri resolves URLs, renders them and classifies their hosts.
//
// Usage:
//
//	crawluri [flags] [URL...]
//
// URLs are read from the arguments or, if there are none, line by line from stdin.
// Every URL produces one tab-separated line:
//
//	<canonical URL>	<filesystem path>	<http|ftp|other>	<in domain>	<exact domain>
package main

import (
	"os"

	"github.com/ghettovoice/crawluri/internal/log"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Def.Error("crawluri failed", "error", err)
		os.Exit(1)
	}
}
