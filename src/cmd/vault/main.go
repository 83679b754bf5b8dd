// vault closes a directory into a single structured archive file, and
// opens an archive file back into a directory, optionally compressing
// and encrypting the archive in between.
package main

import (
	"github.com/horizon-nth/vault/internal/cli"
)

const version = "v0.1.0"

func main() {
	cli.Execute(version)
}
