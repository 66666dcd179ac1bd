package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// configureLogger points the standard logrus logger at w with the format
// and level chosen by the flags.
func configureLogger(input *Input, w io.Writer) {
	log.SetOutput(w)
	if input.jsonLogger {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableQuote:     true,
			DisableTimestamp: true,
			PadLevelText:     true,
			ForceColors:      colorable(w),
			DisableColors:    !colorable(w),
		})
	}

	log.SetLevel(log.InfoLevel)
	if input.verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// colorable reports whether w is a terminal that accepts ANSI colors.
func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}
