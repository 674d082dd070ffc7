package models

import "strings"

const genreSeparator = ","

// GenresMaxLen is the size of the genres column on venues and artists.
const GenresMaxLen = 120

// EncodeGenres joins genre tags into the stored text form. Tags must not
// contain the separator.
func EncodeGenres(tags []string) string {
	return strings.Join(tags, genreSeparator)
}

// DecodeGenres splits the stored text form back into tags in their original
// order. An empty value decodes to an empty, non-nil slice.
func DecodeGenres(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	return strings.Split(encoded, genreSeparator)
}
