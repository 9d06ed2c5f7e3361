package logger

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	DefaultTimeFormat = "15:04:05.000"

	flagDebug = "debug"
)

var (
	logBuffer bytes.Buffer

	// DebugMode flag for determining debug mode
	DebugMode = false
)

func init() {
	zerolog.TimeFieldFormat = DefaultTimeFormat

	consoleWriter := zerolog.ConsoleWriter{
		Out:        &logBuffer,
		NoColor:    true,
		TimeFormat: DefaultTimeFormat,
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter))
}

// PrintLogs print all stacked log
func PrintLogs() {
	if DebugMode {
		logs := logBuffer.String()
		if len(logs) > 0 {
			fmt.Println("\n----- Log -----")
			fmt.Println(logs)
		}
	}
}

// SetDebugMode extracts the --debug flag from the command and enables log output.
func SetDebugMode(cmd *cobra.Command) {
	val, err := cmd.Flags().GetBool(flagDebug)
	if err == nil {
		DebugMode = val
	}
}

// AddLogFlag set flag --debug
func AddLogFlag(cmd ...*cobra.Command) {
	for _, c := range cmd {
		c.Flags().Bool(flagDebug, false, "Run in debug mode")
	}
}
