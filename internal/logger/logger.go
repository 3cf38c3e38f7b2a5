package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{}) // Use JSON format for structured logs
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init applies the configured level and, when file is not empty, appends
// log output to that file instead of stdout.
func Init(level, file string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)

	if file != "" {
		logFile, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return err
		}
		Logger.SetOutput(logFile)
	}
	return nil
}

// LogEvent logs structured events
func LogEvent(level logrus.Level, message string, fields logrus.Fields) {
	Logger.WithFields(fields).Log(level, message)
}
