package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tecskill/rtx-cli/cmd/rtx/root"
	_ "github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/telemetry"
)

// These variables are overridden by ldflags during build.
// Example: go build -ldflags "-X main.AppVersion=1.0.0 -X main.PosthogAPIKey=<KEY> -X main.SentryDsn=<DSN>"
var (
	AppVersion    string
	PosthogAPIKey string
	SentryDsn     string
)

func init() {
	// Set default app version in case not provided by ldflags
	if AppVersion == "" {
		AppVersion = "dev"
	}
	root.AppVersion = AppVersion
}

func main() {
	telemetry.SentryInit(SentryDsn)
	defer telemetry.SentryFlush()

	log.Logger = log.Logger.Hook(telemetry.SentryHook{})

	telemetry.PosthogInit(PosthogAPIKey)
	defer telemetry.PosthogClose()

	if len(os.Args) > 1 && os.Args[1] == "post-installation" {
		telemetry.PosthogCaptureEvent(AppVersion, telemetry.PostInstallationEvent)
		return
	}

	telemetry.PosthogCaptureEvent(AppVersion, telemetry.RunningEvent)

	root.Execute()
}
