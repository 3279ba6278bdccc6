// Command cfgmap queries configuration files through the cfgmap container.
//
// Usage:
//
//	cfgmap get config.yaml server/port
//	cfgmap option --default-key default config.toml http timeout
//	cfgmap check config.json servers list:map
//	cfgmap keys .env DATABASE
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	cmd := newRootCmd(afero.NewOsFs())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
