package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hewerrors "github.com/hewgo/hew/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦┌─┐┬ ┬
  ╠═╣├┤ │││
  ╩ ╩└─┘└┴┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "hew",
		Short: "Build HTML trees in Go and serve them",
		Long: `Hew is a document-tree construction library for Go with a
small CLI around it.

Build pages as real element trees with the el package, render
them with pkg/render, then:

  • serve    preview a rendered site with live reload
  • publish  upload a rendered site to S3
  • version  print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var he *hewerrors.HewError
		if stderrors.As(err, &he) {
			fmt.Fprint(os.Stderr, hewerrors.Format(he))
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Hew ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
