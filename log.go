package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var formatter = &logrus.TextFormatter{
	FullTimestamp: true,
}

// NewLogger returns a logrus logger writing to w at the named level
func NewLogger(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(formatter)
	SetLevel(l, level)
	return l
}

// SetLevel sets the level of logging
func SetLevel(l *logrus.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "info":
		l.SetLevel(logrus.InfoLevel)
	case "warn":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	return NewLogger(io.Discard, "error")
}
