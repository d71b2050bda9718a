// Package booklist converts a CSV book inventory into a Markdown catalogue.
// Records are grouped by category, sorted by the primary author's formatted
// last name and title, and rendered as pipe tables. Each run is a single
// pass: load, transform, publish.
package booklist

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	booklistcmd "github.com/goliatone/go-booklist/internal/commands/booklist"
	"github.com/goliatone/go-booklist/internal/logging/gologger"
	"github.com/goliatone/go-booklist/pkg/interfaces"
)

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider injects a logging provider. It takes precedence over the
// provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// Module wires the conversion pipeline behind a small facade.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	handler  *booklistcmd.ConvertCatalogHandler
}

// New validates cfg and assembles a ready-to-run module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "booklist config invalid")
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, fmt.Errorf("booklist: configure logging: %w", err)
		}
		m.provider = provider
	}

	m.handler = booklistcmd.NewConvertCatalogHandler(m.provider)
	return m, nil
}

// Convert runs one conversion using the module configuration. The destination
// file is replaced atomically on success and left untouched on failure.
func (m *Module) Convert(ctx context.Context) error {
	return m.handler.Execute(ctx, booklistcmd.ConvertCatalogCommand{
		Source:          m.config.Source,
		Destination:     m.config.Destination,
		Title:           m.config.Title,
		FrontMatter:     m.config.FrontMatter,
		TableOfContents: m.config.TableOfContents,
	})
}

// Config returns a copy of the module configuration.
func (m *Module) Config() Config {
	return m.config
}
