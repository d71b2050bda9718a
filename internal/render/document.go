// Package render turns catalog records into a Markdown document: one section
// per category, each holding a pipe table sorted by the primary author's
// formatted last name, then title.
package render

import (
	"bytes"
	"fmt"
	"sort"

	slug "github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-booklist/internal/authors"
	"github.com/goliatone/go-booklist/internal/catalog"
	"github.com/goliatone/go-booklist/internal/logging"
	"github.com/goliatone/go-booklist/pkg/interfaces"
)

const defaultDocumentTitle = "Book Catalogue"

// Option customises renderer output. The zero configuration reproduces the
// plain table layout with no document preamble.
type Option func(*Renderer)

// WithFrontMatter prefixes the document with a YAML front matter block
// carrying the document title and record counts.
func WithFrontMatter() Option {
	return func(r *Renderer) {
		r.frontMatter = true
	}
}

// WithTableOfContents emits a linked category index ahead of the tables.
func WithTableOfContents() Option {
	return func(r *Renderer) {
		r.toc = true
	}
}

// WithTitle overrides the document title used by front matter output.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// Renderer produces Markdown documents from catalog records.
type Renderer struct {
	logger      interfaces.Logger
	title       string
	frontMatter bool
	toc         bool
}

// NewRenderer constructs a Renderer. A nil provider yields a silent renderer.
func NewRenderer(provider interfaces.LoggerProvider, opts ...Option) *Renderer {
	r := &Renderer{
		logger: logging.RenderLogger(provider),
		title:  defaultDocumentTitle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render groups records by category and emits the full Markdown document.
// Category sections appear in lexicographic order; rows within a section are
// sorted by (formatted last name, title) with ties keeping input order.
func (r *Renderer) Render(records []catalog.Record) ([]byte, error) {
	groups, err := groupRecords(records)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if r.frontMatter {
		if err := writeFrontMatter(&buf, r.title, groups, len(records)); err != nil {
			return nil, err
		}
	}
	if r.toc {
		if err := writeTableOfContents(&buf, groups); err != nil {
			return nil, err
		}
	}

	for _, group := range groups {
		writeGroup(&buf, group)
	}

	logging.WithFields(r.logger, map[string]any{
		"category_count": len(groups),
		"record_count":   len(records),
	}).Debug("render.document.completed")

	return buf.Bytes(), nil
}

type tableRow struct {
	record    catalog.Record
	lastNames string
}

type categoryGroup struct {
	name string
	rows []tableRow
}

// groupRecords partitions records by category and sorts each partition. Every
// record lands in exactly one group; the author formatting error propagates
// so a bad row fails the whole run.
func groupRecords(records []catalog.Record) ([]categoryGroup, error) {
	byCategory := map[string][]tableRow{}
	for _, record := range records {
		lastNames, err := authors.Format(record.Authors)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", record.Title, err)
		}
		byCategory[record.Category] = append(byCategory[record.Category], tableRow{
			record:    record,
			lastNames: lastNames,
		})
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]categoryGroup, 0, len(names))
	for _, name := range names {
		rows := byCategory[name]
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].lastNames != rows[j].lastNames {
				return rows[i].lastNames < rows[j].lastNames
			}
			return rows[i].record.Title < rows[j].record.Title
		})
		groups = append(groups, categoryGroup{name: name, rows: rows})
	}
	return groups, nil
}

func writeGroup(buf *bytes.Buffer, group categoryGroup) {
	fmt.Fprintf(buf, "## %s\n\n", group.name)
	buf.WriteString("| Author | Title | ISBN |\n")
	buf.WriteString("| ------ | ----- | ---- |\n")

	for _, row := range group.rows {
		fmt.Fprintf(buf, "| %s | *%s* | %s |\n", row.lastNames, row.record.Title, isbnCell(row.record))
	}
	buf.WriteString("\n")
}

// isbnCell resolves the ISBN column. Only LCCN rows read the ISBN-13 field;
// every other row prints the ISBN-10 column's own value, matching the
// historical layout of the inventory.
func isbnCell(record catalog.Record) string {
	switch record.ISBNKind() {
	case catalog.ISBNPre:
		return "Pre-ISBN"
	case catalog.ISBNNone:
		return "No ISBN"
	case catalog.ISBNLCCN:
		return "LCCN: " + record.ISBN13
	default:
		return record.ISBN10
	}
}

type frontMatterEnvelope struct {
	Title      string `yaml:"title"`
	Categories int    `yaml:"categories"`
	Records    int    `yaml:"records"`
}

func writeFrontMatter(buf *bytes.Buffer, title string, groups []categoryGroup, records int) error {
	meta, err := yaml.Marshal(frontMatterEnvelope{
		Title:      title,
		Categories: len(groups),
		Records:    records,
	})
	if err != nil {
		return fmt.Errorf("marshal front matter: %w", err)
	}

	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n\n")
	return nil
}

func writeTableOfContents(buf *bytes.Buffer, groups []categoryGroup) error {
	for _, group := range groups {
		anchor, err := slug.Normalize(group.name)
		if err != nil {
			return fmt.Errorf("slug category %q: %w", group.name, err)
		}
		fmt.Fprintf(buf, "- [%s](#%s)\n", group.name, anchor)
	}
	buf.WriteString("\n")
	return nil
}
