// Command profiltool simulates a credential reset and fetches public profile
// information.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/profiltool/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
