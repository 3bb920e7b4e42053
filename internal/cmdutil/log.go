package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing plain key=value lines to dst.
// quiet keeps warnings and errors only; verbose adds debug lines.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(dst)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
