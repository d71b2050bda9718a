// Package booklistcmd exposes the conversion pipeline as go-command messages
// so hosts can dispatch catalogue builds alongside their other commands.
package booklistcmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-booklist/internal/catalog"
	"github.com/goliatone/go-booklist/internal/commands"
	"github.com/goliatone/go-booklist/internal/logging"
	"github.com/goliatone/go-booklist/internal/render"
	"github.com/goliatone/go-booklist/pkg/interfaces"
)

const convertOperation = "booklist.convert_catalog"

var _ command.Commander[ConvertCatalogCommand] = (*ConvertCatalogHandler)(nil)

// ConvertCatalogHandler orchestrates CSV-to-Markdown conversions via the
// shared command handler foundation.
type ConvertCatalogHandler struct {
	inner *commands.Handler[ConvertCatalogCommand]
}

// NewConvertCatalogHandler creates a handler bound to the supplied logger
// provider. The provider may be nil; the pipeline then runs silently.
func NewConvertCatalogHandler(provider interfaces.LoggerProvider, opts ...commands.HandlerOption[ConvertCatalogCommand]) *ConvertCatalogHandler {
	baseLogger := commands.CommandLogger(provider, "convert")

	exec := func(ctx context.Context, msg ConvertCatalogCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reader := catalog.NewReader(provider)
		records, err := reader.LoadFile(msg.Source)
		if err != nil {
			return err
		}

		renderOpts := []render.Option{render.WithTitle(msg.Title)}
		if msg.FrontMatter {
			renderOpts = append(renderOpts, render.WithFrontMatter())
		}
		if msg.TableOfContents {
			renderOpts = append(renderOpts, render.WithTableOfContents())
		}

		renderer := render.NewRenderer(provider, renderOpts...)
		if err := renderer.WriteFile(msg.Destination, records); err != nil {
			return err
		}

		categories := map[string]struct{}{}
		for _, record := range records {
			categories[record.Category] = struct{}{}
		}

		logging.WithFields(baseLogger, map[string]any{
			"run_id":         uuid.NewString(),
			"source":         msg.Source,
			"destination":    msg.Destination,
			"record_count":   len(records),
			"category_count": len(categories),
		}).Info("booklist.command.convert_catalog.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertCatalogCommand]{
		commands.WithLogger[ConvertCatalogCommand](baseLogger),
		commands.WithOperation[ConvertCatalogCommand](convertOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertCatalogHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertCatalogCommand].
func (h *ConvertCatalogHandler) Execute(ctx context.Context, msg ConvertCatalogCommand) error {
	return h.inner.Execute(ctx, msg)
}
