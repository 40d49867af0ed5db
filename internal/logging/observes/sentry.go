// Package observes wires error reporting backends.
package observes

import (
	"github.com/getsentry/sentry-go"
)

// SentryOptions configures sentry error reporting.
type SentryOptions struct {
	Dsn         string
	Name        string
	Environment string
}

// NewSentry registers sentry. A nil option or empty DSN skips
// initialization.
func NewSentry(opt *SentryOptions) error {
	if opt == nil || opt.Dsn == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		TracesSampleRate: 1.0,
		ServerName:       opt.Name,
		Environment:      opt.Environment,
	})
}
