package main

import (
	"context"
	"os"

	"github.com/agbru/fibspiral/internal/app"
	apperrors "github.com/agbru/fibspiral/internal/errors"
)

func main() {
	os.Exit(run())
}

// run keeps the single os.Exit in main, so deferred cleanup inside the
// application always executes.
func run() int {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(os.Args, os.Stderr)
	if app.IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	if err != nil {
		return apperrors.ExitErrorConfig
	}

	return application.Run(context.Background(), os.Stdout)
}
