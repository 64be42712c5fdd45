package dtcref

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field identifies which record field a token occurrence came from.
// The field determines the occurrence's ranking weight: description
// matches rank above cause matches, which rank above action matches.
type Field int

// Record fields indexed for keyword search.
const (
	FieldDescription Field = iota
	FieldCause
	FieldAction
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldDescription:
		return "description"
	case FieldCause:
		return "cause"
	case FieldAction:
		return "action"
	}
	return "unknown"
}

// Weight returns the ranking weight of a token occurrence in the field.
func (f Field) Weight() float64 {
	switch f {
	case FieldDescription:
		return 3.0
	case FieldCause:
		return 2.0
	case FieldAction:
		return 1.0
	}
	return 0
}

// Posting records one token occurrence in a record field. Position is
// the 1-based token offset within the field text, kept so that
// phrase-proximity ranking can be layered on later without re-indexing.
type Posting struct {
	Code     string `json:"code"`
	Field    Field  `json:"field"`
	Position int    `json:"position"`
}

// Tokenize splits text into normalized search tokens: lowercased, split
// on non-alphanumeric boundaries, with tokens shorter than two runes
// dropped. No stemming or fuzzy matching is applied; queries and
// records must be tokenized identically for search to behave
// predictably.
func Tokenize(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := raw[:0]
	for _, t := range raw {
		if utf8.RuneCountInString(t) >= 2 {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
