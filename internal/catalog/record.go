// Package catalog loads book records from CSV inventories. Columns are
// resolved by header name so column order never matters, and the Pages and
// ISBN-13 fields stay raw strings to preserve leading zeros and sentinel
// text such as "Pre-ISBN".
package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Required column headers in the source CSV. Extra columns are ignored.
const (
	ColumnCategory = "Category"
	ColumnAuthors  = "Author(s)"
	ColumnTitle    = "Title"
	ColumnISBN10   = "ISBN-10"
	ColumnISBN13   = "ISBN-13"
	ColumnPages    = "Pages"
)

// ISBNKind tags the closed set of identifier variants a record can carry in
// its ISBN-10 column. The sentinel comparison happens once at load time so
// rendering never re-matches ad hoc string literals.
type ISBNKind int

const (
	// ISBNStandard marks a record whose ISBN-10 column holds a real identifier.
	ISBNStandard ISBNKind = iota
	// ISBNPre marks books published before the ISBN system existed.
	ISBNPre
	// ISBNNone marks books that never received an identifier.
	ISBNNone
	// ISBNLCCN marks records identified by a Library of Congress Control
	// Number, stored in the ISBN-13 column.
	ISBNLCCN
)

const (
	sentinelPreISBN = "Pre-ISBN"
	sentinelNoISBN  = "No ISBN"
	sentinelLCCN    = "LCCN"
)

// Record is a single book row from the inventory.
type Record struct {
	Category string
	Authors  string
	Title    string
	ISBN10   string
	ISBN13   string
	Pages    string
}

// Validate enforces the record invariants: every record needs a non-empty
// author field and title.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Authors, validation.Required),
		validation.Field(&r.Title, validation.Required),
	)
}

// ISBNKind classifies the record's identifier column.
func (r Record) ISBNKind() ISBNKind {
	switch r.ISBN10 {
	case sentinelPreISBN:
		return ISBNPre
	case sentinelNoISBN:
		return ISBNNone
	case sentinelLCCN:
		return ISBNLCCN
	default:
		return ISBNStandard
	}
}
