// Package authors normalizes raw author fields into display strings of last
// names. A field may hold several authors joined by commas and the word
// "and"; each author contributes their final name token, with special
// handling for the "Jr." suffix and for citations ending in "et al.".
package authors

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const emptyAuthorFieldCode = "EMPTY_AUTHOR_FIELD"

const (
	groupSeparator   = " and "
	suffixJunior     = "Jr."
	etAlMarker       = "et al."
	listSeparator    = ", "
	finalConjunction = " & "
)

// Split breaks a raw author field into trimmed, non-empty author substrings.
// The field is split on the literal " and " first, then each part on commas,
// preserving the order authors appear in.
func Split(field string) []string {
	var out []string
	for _, part := range strings.Split(field, groupSeparator) {
		for _, author := range strings.Split(part, ",") {
			if trimmed := strings.TrimSpace(author); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// LastName extracts the display name for a single author substring. Citations
// containing "et al." pass through verbatim; otherwise the final
// whitespace-delimited token wins, unless it is the exact token "Jr.", in
// which case the preceding token is used. The "Jr." match is case-sensitive.
func LastName(author string) string {
	if strings.Contains(author, etAlMarker) {
		return author
	}

	parts := strings.Fields(author)
	if len(parts) == 0 {
		return ""
	}

	last := parts[len(parts)-1]
	if last == suffixJunior && len(parts) > 1 {
		last = parts[len(parts)-2]
	}
	return last
}

// Format converts a raw author field into a single display string. Multiple
// names are joined with ", " and an ampersand before the final entry, so
// "A. One, B. Two and C. Three" renders as "One, Two & Three". A field that
// yields no extractable names returns ErrEmptyAuthorField.
func Format(field string) (string, error) {
	names := Split(field)
	if len(names) == 0 {
		return "", emptyFieldError(field)
	}

	formatted := make([]string, 0, len(names))
	for _, author := range names {
		if name := LastName(author); name != "" {
			formatted = append(formatted, name)
		}
	}
	if len(formatted) == 0 {
		return "", emptyFieldError(field)
	}

	if len(formatted) > 1 {
		head := strings.Join(formatted[:len(formatted)-1], listSeparator)
		return head + finalConjunction + formatted[len(formatted)-1], nil
	}
	return formatted[0], nil
}

// IsEmptyFieldError reports whether err was produced by an author field with
// no extractable names.
func IsEmptyFieldError(err error) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	if !errors.As(err, &rich) {
		return false
	}
	return rich.TextCode == emptyAuthorFieldCode
}

func emptyFieldError(field string) error {
	return goerrors.New("author field yields no names", goerrors.CategoryValidation).
		WithTextCode(emptyAuthorFieldCode).
		WithMetadata(map[string]any{"field": field})
}
