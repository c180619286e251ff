/*
Package zapadapter implements tracing with the zap logger.

Packages of this module trace through the interface of
github.com/npillmayer/schuko/tracing and do not bind to a concrete logger.
Applications using zap for logging install this adapter to route traces of
this module to their zap logger:

	logger, _ := zap.NewDevelopment()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(zapadapter.GetAdapter(logger)))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zapadapter

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a zap logger.
//
// Tracers derived with P share the trace level of their origin.
type Tracer struct {
	log   *zap.SugaredLogger
	level zap.AtomicLevel
}

// New creates a new Tracer instance based on a zap logger. The trace level
// is initially set to Debug; the logger's own level still applies.
func New(logger *zap.Logger) *Tracer {
	return &Tracer{
		log:   logger.Sugar(),
		level: zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

// GetAdapter creates an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter(logger *zap.Logger) tracing.Adapter {
	return func() tracing.Trace {
		return New(logger)
	}
}

// Interface tracing.Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &Tracer{log: t.log.With(key, val), level: t.level}
}

// Interface tracing.Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	if t.level.Enabled(zapcore.DebugLevel) {
		t.log.Debugf(s, args...)
	}
}

// Interface tracing.Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	if t.level.Enabled(zapcore.InfoLevel) {
		t.log.Infof(s, args...)
	}
}

// Interface tracing.Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.log.Errorf(s, args...)
}

// Interface tracing.Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level.SetLevel(translateTraceLevel(l))
}

// Interface tracing.Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return translateLogLevel(t.level.Level())
}

// Interface tracing.Trace
//
// SetOutput replaces the underlying zap core by a console encoder writing to
// writer. Fields set by P are not carried over.
func (t *Tracer) SetOutput(writer io.Writer) {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(writer), zapcore.DebugLevel)
	t.log = zap.New(core).Sugar()
}

func translateLogLevel(l zapcore.Level) tracing.TraceLevel {
	switch l {
	case zapcore.DebugLevel:
		return tracing.LevelDebug
	case zapcore.InfoLevel:
		return tracing.LevelInfo
	case zapcore.ErrorLevel:
		return tracing.LevelError
	}
	return tracing.LevelDebug
}

func translateTraceLevel(l tracing.TraceLevel) zapcore.Level {
	switch l {
	case tracing.LevelDebug:
		return zapcore.DebugLevel
	case tracing.LevelInfo:
		return zapcore.InfoLevel
	case tracing.LevelError:
		return zapcore.ErrorLevel
	}
	return zapcore.DebugLevel
}
