// Command memora is the personal memory assistant CLI.
package main

import "github.com/custodia-labs/memora-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
