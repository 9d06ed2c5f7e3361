package telemetry

import (
	"errors"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var sentryInitialized bool

// SentryHook is a custom hook that implements zerolog.Hook interface
type SentryHook struct{}

// Run is called for every log event and implements the zerolog.Hook interface
func (h SentryHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if !sentryInitialized || !slices.Contains(h.Levels(), level) {
		return
	}

	if level == zerolog.ErrorLevel || level == zerolog.FatalLevel || level == zerolog.PanicLevel {
		sentry.CaptureException(errors.New(msg))
		return
	}

	sentry.CaptureMessage(msg)
}

// Levels returns the log levels that this hook should be triggered for
func (h SentryHook) Levels() []zerolog.Level {
	return []zerolog.Level{
		zerolog.WarnLevel, zerolog.ErrorLevel,
		zerolog.FatalLevel, zerolog.PanicLevel,
	}
}

// SentryInit initialize sentry
func SentryInit(sentryDsn string) {
	if sentryDsn == "" {
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Err(err).Msg("Cannot initialize sentry")
		return
	}

	sentryInitialized = true
}

// SentryFlush sends buffered events before the program terminates.
func SentryFlush() {
	if sentryInitialized {
		if err := recover(); err != nil {
			sentry.CurrentHub().Recover(err)
		}

		sentry.Flush(5 * time.Second) //nolint:mnd
		sentryInitialized = false
	}
}
