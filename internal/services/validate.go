package services

import (
	"database/sql"
	"unicode/utf8"
)

// Field length limits, counted in characters.
const (
	MaxProjectTitleLength       = 100
	MaxProjectDescriptionLength = 500
	MaxAnnotationContentLength  = 2000
	MaxAnnotationTitleLength    = 200
)

func checkLen(value string, max int, field string) error {
	if utf8.RuneCountInString(value) > max {
		return invalid(field, "%s must be %d characters or fewer", field, max)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
