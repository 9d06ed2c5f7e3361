package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
	"github.com/rs/zerolog/log"

	"github.com/tecskill/rtx-cli/common/appdir"
)

const (
	PostInstallationEvent = "RTX CLI Installation"
	RunningEvent          = "RTX CLI Running"

	timestampFile  = "last_run"
	distinctIDFile = "distinct_id"
)

var (
	posthogClient      posthog.Client
	posthogInitialized bool
	lastLoggedTime     time.Time
)

// PosthogInit initializes the telemetry client. A missing API key leaves
// telemetry disabled.
func PosthogInit(posthogAPIKey string) {
	if posthogAPIKey == "" {
		return
	}

	posthogClient = posthog.New(posthogAPIKey)
	posthogInitialized = true

	lastTime, err := getLastLoggedTime()
	if err != nil {
		log.Err(err).Msg("Cannot get last logged time")
	}
	lastLoggedTime = lastTime

	if err := updateLastLoggedTime(time.Now()); err != nil {
		log.Err(err).Msg("Cannot update last logged time")
	}
}

// PosthogCaptureEvent records an event. The running event is deduplicated to
// once per day.
func PosthogCaptureEvent(context, event string) {
	if !posthogInitialized || (isSameDay(lastLoggedTime, time.Now()) && event == RunningEvent) {
		return
	}

	err := posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID(),
		Timestamp:  time.Now(),
		Event:      event,
		Properties: map[string]interface{}{
			"context": context,
		},
	})
	if err != nil {
		log.Err(err).Msg("Cannot capture event")
	}
}

// PosthogClose flushes and shuts down the telemetry client.
func PosthogClose() {
	if posthogInitialized {
		if err := posthogClient.Close(); err != nil {
			log.Err(err).Msg("Cannot close posthog client")
		}
		posthogInitialized = false
	}
}

// distinctID prefers a hashed machine ID and falls back to a random UUID
// persisted in the config dir, so events from one install stay correlated.
func distinctID() string {
	machineID, err := machineid.ProtectedID("rtx-cli")
	if err == nil {
		return machineID
	}
	log.Err(err).Msg("Cannot get machine id, falling back to persisted uuid")

	dir, err := appdir.Dir()
	if err != nil {
		return uuid.NewString()
	}
	idPath := filepath.Join(dir, distinctIDFile)

	if data, err := os.ReadFile(idPath); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := uuid.NewString()
	if err := os.WriteFile(idPath, []byte(id), 0600); err != nil {
		log.Err(err).Msg("Cannot persist distinct id")
	}
	return id
}

func getLastLoggedTime() (time.Time, error) {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return time.Time{}, err
	}

	if _, err = os.Stat(filePath); os.IsNotExist(err) {
		return time.Time{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return time.Time{}, err
	}

	timestamp, err := time.Parse(time.DateOnly, string(data))
	if err != nil {
		return time.Time{}, err
	}

	return timestamp, nil
}

func getTimestampFilePath() (string, error) {
	if err := appdir.Setup(); err != nil {
		return "", err
	}
	dir, err := appdir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, timestampFile), nil
}

func updateLastLoggedTime(timestamp time.Time) error {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(timestamp.Format(time.DateOnly)), 0644) //nolint:gosec // not sensitive
}

func isSameDay(time1, time2 time.Time) bool {
	return time1.Year() == time2.Year() &&
		time1.Month() == time2.Month() &&
		time1.Day() == time2.Day()
}
