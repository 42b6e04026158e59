// Command freightctl runs the record reconciliation and BOL builders
// against local JSON or YAML files.
package main

import (
	"os"

	"freight-console/internal/core/logger"
)

func main() {
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
