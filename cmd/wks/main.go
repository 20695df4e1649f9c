// Package main is the entry point for the workspace-secrets CLI.
package main

import (
	"os"

	"github.com/devworkspace-io/workspace-secrets/cmd/wks/app"
	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
