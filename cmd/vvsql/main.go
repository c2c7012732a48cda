// Package main provides the CLI entrypoint for vvsql.
package main

import (
	"os"

	"github.com/vvsql/vvsql/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
