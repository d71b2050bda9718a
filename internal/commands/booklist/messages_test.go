package booklistcmd

import "testing"

func TestConvertCatalogCommandType(t *testing.T) {
	if got := (ConvertCatalogCommand{}).Type(); got != "booklist.convert_catalog" {
		t.Fatalf("unexpected message type: %q", got)
	}
}

func TestConvertCatalogCommandValidate(t *testing.T) {
	valid := ConvertCatalogCommand{Source: "data/books.csv", Destination: "data/books.md"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected command to validate, got %v", err)
	}

	cases := map[string]ConvertCatalogCommand{
		"missing source":         {Destination: "out.md"},
		"missing destination":    {Source: "in.csv"},
		"whitespace source":      {Source: "   ", Destination: "out.md"},
		"whitespace destination": {Source: "in.csv", Destination: "\t"},
	}
	for name, cmd := range cases {
		if err := cmd.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
