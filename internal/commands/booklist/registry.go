package booklistcmd

import (
	"github.com/goliatone/go-booklist/internal/commands"
	"github.com/goliatone/go-booklist/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers into a host dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the command handlers produced by RegisterCommands.
type HandlerSet struct {
	Convert *ConvertCatalogHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	convertHandlerOpts []commands.HandlerOption[ConvertCatalogCommand]
}

// WithConvertHandlerOptions forwards options to the ConvertCatalogHandler constructor.
func WithConvertHandlerOptions(opts ...commands.HandlerOption[ConvertCatalogCommand]) Option {
	return func(cfg *options) {
		cfg.convertHandlerOpts = append(cfg.convertHandlerOpts, opts...)
	}
}

// RegisterCommands builds the booklist command handlers and registers them
// with the provided registry. The constructed HandlerSet is returned so
// callers can wire additional integrations as needed.
func RegisterCommands(reg CommandRegistry, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	convertHandler := NewConvertCatalogHandler(provider, cfg.convertHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(convertHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Convert: convertHandler}, nil
}
