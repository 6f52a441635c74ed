package intl

import (
	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the leveled logging contract this package emits through. It
// mirrors the surface of github.com/goliatone/go-logger so host
// applications can plug that package in without an adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger discards every record. It is the default when no logger is
// configured.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...any) {}
func (NoopLogger) Info(string, ...any)  {}
func (NoopLogger) Warn(string, ...any)  {}
func (NoopLogger) Error(string, ...any) {}

// GoLogger builds a go-logger backed Logger. The options configure the
// root logger; the returned logger is the "intl" child.
func GoLogger(opts ...glog.Option) Logger {
	root := glog.NewLogger(opts...)
	return root.GetLogger("intl")
}
