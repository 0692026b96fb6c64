package main

import (
	"github.com/Wrap-pixelz/domain-hoster/internal/adapters/in/cli"
)

// Set via ldflags.
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
