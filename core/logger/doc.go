// Package logger builds the application's zap logger.
//
// Level, encoding (json or console) and output path come from Config. Pure
// packages log through zap.L(), so commands install the built logger with
// zap.ReplaceGlobals.
//
// WithRayID attaches the ray id set by the rayid middleware, which ties every
// log line of one request together:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Relic scan failed", zap.Error(err))
package logger
