package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-booklist/internal/catalog"
)

func sampleRecords() []catalog.Record {
	return []catalog.Record{
		{Category: "Science Fiction", Authors: "Frank Herbert", Title: "Dune", ISBN10: "0-441-17271-7", ISBN13: "978-0-441-17271-9"},
		{Category: "Fantasy", Authors: "J. R. R. Tolkien", Title: "The Hobbit", ISBN10: "Pre-ISBN"},
		{Category: "Philosophy", Authors: "Henry David Thoreau", Title: "Walden", ISBN10: "LCCN", ISBN13: "2004003048"},
		{Category: "Science Fiction", Authors: "Ursula K. Le Guin", Title: "The Dispossessed", ISBN10: "0-06-051275-X"},
		{Category: "Fantasy", Authors: "Anonymous", Title: "Beowulf", ISBN10: "No ISBN"},
	}
}

func TestRenderDefaultLayout(t *testing.T) {
	renderer := NewRenderer(nil)

	got, err := renderer.Render(sampleRecords())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"## Fantasy",
		"",
		"| Author | Title | ISBN |",
		"| ------ | ----- | ---- |",
		"| Anonymous | *Beowulf* | No ISBN |",
		"| Tolkien | *The Hobbit* | Pre-ISBN |",
		"",
		"## Philosophy",
		"",
		"| Author | Title | ISBN |",
		"| ------ | ----- | ---- |",
		"| Thoreau | *Walden* | LCCN: 2004003048 |",
		"",
		"## Science Fiction",
		"",
		"| Author | Title | ISBN |",
		"| ------ | ----- | ---- |",
		"| Guin | *The Dispossessed* | 0-06-051275-X |",
		"| Herbert | *Dune* | 0-441-17271-7 |",
		"",
	}, "\n") + "\n"

	if string(got) != want {
		t.Fatalf("unexpected document:\n%s", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer := NewRenderer(nil)

	first, err := renderer.Render(sampleRecords())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := renderer.Render(sampleRecords())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected byte-identical output for identical input")
	}
}

func TestRenderSortsWithinCategory(t *testing.T) {
	records := []catalog.Record{
		{Category: "Fiction", Authors: "Zoe Brown", Title: "Zebra", ISBN10: "1"},
		{Category: "Fiction", Authors: "Ann Brown", Title: "Apple", ISBN10: "2"},
		{Category: "Fiction", Authors: "Al Adams", Title: "Middle", ISBN10: "3"},
	}

	got, err := NewRenderer(nil).Render(records)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	adams := bytes.Index(got, []byte("Adams"))
	apple := bytes.Index(got, []byte("Apple"))
	zebra := bytes.Index(got, []byte("Zebra"))
	if adams == -1 || apple == -1 || zebra == -1 {
		t.Fatalf("expected all rows present:\n%s", got)
	}
	if !(adams < apple && apple < zebra) {
		t.Fatalf("rows out of order:\n%s", got)
	}
}

func TestRenderStableOnTies(t *testing.T) {
	// Identical sort keys keep input order.
	records := []catalog.Record{
		{Category: "Fiction", Authors: "B. Same", Title: "Same Title", ISBN10: "first"},
		{Category: "Fiction", Authors: "A. Same", Title: "Same Title", ISBN10: "second"},
	}

	got, err := NewRenderer(nil).Render(records)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if bytes.Index(got, []byte("first")) > bytes.Index(got, []byte("second")) {
		t.Fatalf("tie broke input order:\n%s", got)
	}
}

func TestRenderPropagatesAuthorError(t *testing.T) {
	records := []catalog.Record{
		{Category: "Fiction", Authors: "   ", Title: "Broken"},
	}

	if _, err := NewRenderer(nil).Render(records); err == nil {
		t.Fatal("expected error for empty author field")
	}
}

func TestRenderStructure(t *testing.T) {
	records := sampleRecords()
	got, err := NewRenderer(nil).Render(records)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(got))

	var headings, dataRows int
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				headings++
			}
		case *east.TableRow:
			dataRows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	if headings != 3 {
		t.Fatalf("expected 3 category headings, got %d", headings)
	}
	// Every input record shows up as exactly one table row.
	if dataRows != len(records) {
		t.Fatalf("expected %d data rows, got %d", len(records), dataRows)
	}
}

func TestRenderFrontMatter(t *testing.T) {
	renderer := NewRenderer(nil, WithFrontMatter(), WithTitle("Home Library"))

	got, err := renderer.Render(sampleRecords())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var meta struct {
		Title      string `yaml:"title"`
		Categories int    `yaml:"categories"`
		Records    int    `yaml:"records"`
	}
	body, err := frontmatter.Parse(bytes.NewReader(got), &meta)
	if err != nil {
		t.Fatalf("parse front matter: %v", err)
	}

	if meta.Title != "Home Library" {
		t.Fatalf("unexpected title: %q", meta.Title)
	}
	if meta.Categories != 3 || meta.Records != 5 {
		t.Fatalf("unexpected counts: %+v", meta)
	}
	if !bytes.HasPrefix(bytes.TrimLeft(body, "\n"), []byte("## Fantasy")) {
		t.Fatalf("expected body to start at first category:\n%s", body)
	}
}

func TestRenderTableOfContents(t *testing.T) {
	renderer := NewRenderer(nil, WithTableOfContents())

	got, err := renderer.Render(sampleRecords())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !bytes.Contains(got, []byte("- [Science Fiction](#science-fiction)")) {
		t.Fatalf("expected TOC entry:\n%s", got)
	}
	if bytes.Index(got, []byte("- [Fantasy]")) > bytes.Index(got, []byte("## Fantasy")) {
		t.Fatalf("expected TOC ahead of sections:\n%s", got)
	}
}
