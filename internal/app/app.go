// Package app wires configuration to the services the terminal
// interface runs on: the OpenNebula client, the browsing session, and
// the logger.
package app

import (
	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/logging"
	"github.com/tonetui/tone/internal/one"
)

type App struct {
	Provider *one.Client
	Session  *browser.Session
	Logger   *logging.Logger
}

// New constructs the application services from config. Credentials come
// from the environment per the OpenNebula CLI conventions.
func New(cfg Config) (*App, error) {
	logger, err := logging.NewLogger(logging.Options{
		Level: cfg.LogLevel,
		Path:  cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	creds, err := one.LoadCredentials(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	logger.Info("starting session",
		"endpoint", creds.Endpoint,
		"user", creds.Username,
		"readonly", cfg.Readonly,
	)

	return &App{
		Provider: one.NewClient(creds, logger),
		Session:  browser.NewSession(creds.Endpoint, creds.Username, cfg.Readonly),
		Logger:   logger,
	}, nil
}

// Cleanup releases whatever New opened.
func (a *App) Cleanup() {
	_ = a.Logger.Close()
}
