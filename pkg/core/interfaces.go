package core

// Logger is the logging seam the renderer and integrator are injected
// with, so that neither package depends directly on a logging library.
// See pkg/renderer/logger.go for the zap-backed implementation used in
// production.
type Logger interface {
	Printf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}
