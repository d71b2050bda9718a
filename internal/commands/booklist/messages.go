package booklistcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const convertCatalogMessageType = "booklist.convert_catalog"

// ConvertCatalogCommand runs one full conversion: load the CSV inventory at
// Source, group and sort the records, and publish the Markdown document at
// Destination. Each run is independent and idempotent.
type ConvertCatalogCommand struct {
	// Source selects the CSV inventory to read.
	Source string `json:"source"`
	// Destination selects the Markdown file to write; it is replaced atomically.
	Destination string `json:"destination"`
	// Title overrides the document title used when front matter is enabled.
	Title string `json:"title,omitempty"`
	// FrontMatter prefixes the document with a YAML metadata block.
	FrontMatter bool `json:"front_matter,omitempty"`
	// TableOfContents emits a linked category index ahead of the tables.
	TableOfContents bool `json:"table_of_contents,omitempty"`
}

// Type implements command.Message.
func (ConvertCatalogCommand) Type() string { return convertCatalogMessageType }

// Validate ensures both paths are present before the handler executes.
func (cmd ConvertCatalogCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Source, validation.Required, validation.By(requirePath("booklist.convert_catalog.source_required", "source is required"))),
		validation.Field(&cmd.Destination, validation.Required, validation.By(requirePath("booklist.convert_catalog.destination_required", "destination is required"))),
	)
}

func requirePath(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
