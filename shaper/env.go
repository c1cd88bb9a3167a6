package shaper

import (
	"log/slog"

	"github.com/benoitkugler/svgedit/svgunits"
	"github.com/benoitkugler/svgedit/textmetrics"
)

// Env gathers the collaborators used to resolve geometry.
type Env struct {
	Units  svgunits.Converter
	Text   textmetrics.Provider
	Logger *slog.Logger
}

var defaultText = textmetrics.NewFaceProvider()

// DefaultEnv uses standard units (96 DPI, 16px font size),
// the Go fonts for text metrics and the default logger.
func DefaultEnv() Env {
	return Env{
		Units:  svgunits.Standard{},
		Text:   defaultText,
		Logger: slog.Default(),
	}
}

// WithDefaults replaces nil collaborators by the default ones
func (env Env) WithDefaults() Env {
	def := DefaultEnv()
	if env.Units == nil {
		env.Units = def.Units
	}
	if env.Text == nil {
		env.Text = def.Text
	}
	if env.Logger == nil {
		env.Logger = def.Logger
	}
	return env
}
