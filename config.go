package booklist

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config drives a conversion run. The zero value is not usable; start from
// DefaultConfig and override what the host needs.
type Config struct {
	// Source selects the CSV inventory to read.
	Source string
	// Destination selects the Markdown file to write.
	Destination string
	// Title names the document when front matter is enabled.
	Title string
	// FrontMatter prefixes the document with a YAML metadata block.
	FrontMatter bool
	// TableOfContents emits a linked category index ahead of the tables.
	TableOfContents bool
	// Logging configures the optional go-logger provider built by the module.
	Logging LoggingConfig
}

// LoggingConfig mirrors the options accepted by the go-logger adapter.
type LoggingConfig struct {
	// Enabled switches the built-in provider on; when false the module is silent
	// unless a provider is injected through WithLoggerProvider.
	Enabled bool
	// Level selects the minimum level (trace, debug, info, warn, error, fatal).
	Level string
	// Format selects the output encoder (json, console, pretty).
	Format string
	// AddSource annotates entries with caller information.
	AddSource bool
}

// DefaultConfig returns the conventional relative paths used by the
// stand-alone binary.
func DefaultConfig() Config {
	return Config{
		Source:      "data/books.csv",
		Destination: "data/books.md",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate enforces the minimal configuration contract.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Source, validation.Required),
		validation.Field(&c.Destination, validation.Required),
	)
}
