package main

import (
	"os"

	"curconv/internal/cli"
)

// version is overridable at build time:
// go build -ldflags "-X main.version=1.2.0" ./cmd
var version = "1.1.0"

func main() {
	os.Exit(cli.Execute(version))
}
