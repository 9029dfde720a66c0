// Command tubeplan drives the content pipeline from a terminal.
package main

import (
	"context"
	"os"

	"tubeplan/app"
	"tubeplan/config"
	"tubeplan/pkg/logger"
)

func main() {
	cfg := config.Load()
	open := func(ctx context.Context) (*app.App, error) {
		// zap writes to stderr, stdout carries only the JSON result
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return nil, err
		}
		return app.New(ctx, cfg, log)
	}
	if err := execute(context.Background(), open, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
