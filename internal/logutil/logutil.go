// Package logutil configures process-wide logging for the
// authority-replay binary. The casper package itself never touches
// global logging state; only the binary entrypoint does, matching the
// teacher's separation between its shared/logutil package and its leaf
// library packages.
package logutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigurePersistentLogging tees logrus output to stdout and the named
// file, creating it if necessary.
func ConfigurePersistentLogging(logFileName string) error {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, f))
	logrus.WithField("logFileName", logFileName).Info("file logging initialized")
	return nil
}
