package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// Options configures New.
type Options struct {
	// App is attached to every entry as the "app" field.
	App string

	// Level is a zap level name. Unknown or empty levels fall back to info.
	Level string

	// Format selects the zap preset, FormatProduction or FormatDevelopment.
	Format string
}

// New builds a zap logger from opts.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if opts.App != "" {
		config.InitialFields = map[string]any{
			"app": opts.App,
		}
	}

	config.Level = ParseLevel(opts.Level)

	return config.Build()
}

// ParseLevel parses lvl, defaulting to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
