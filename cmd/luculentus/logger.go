package main

import "github.com/rs/zerolog"

// zerologAdapter satisfies render.Logger (Printf(format string, args
// ...interface{})) so the render and scene packages never import zerolog
// directly; only this binary wires the concrete logger, the same way the
// teacher injects its own core.Logger into pkg/renderer rather than
// importing a logging package there.
type zerologAdapter struct {
	log zerolog.Logger
}

func newZerologAdapter(log zerolog.Logger) *zerologAdapter {
	return &zerologAdapter{log: log}
}

func (a *zerologAdapter) Printf(format string, args ...interface{}) {
	a.log.Info().Msgf(format, args...)
}
