// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lang enumerates the languages the toolkit can process.
//
// A Language is a small comparable value; the package vars English,
// German, French, Spanish and Italian cover the supported set. English
// additionally carries a pronoun table which maps each pronoun onto the
// entity types it may and may not refer to.
package lang

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is one of the supported processing languages. The zero value
// is not a valid language; use New or one of the package vars.
type Language struct {
	code string
	tag  language.Tag
}

var (
	English = Language{code: "en", tag: language.English}
	German  = Language{code: "de", tag: language.German}
	French  = Language{code: "fr", tag: language.French}
	Spanish = Language{code: "es", tag: language.Spanish}
	Italian = Language{code: "it", tag: language.Italian}
)

var supported = map[string]Language{
	"en": English,
	"de": German,
	"fr": French,
	"es": Spanish,
	"it": Italian,
}

// NotSupportedError occurs when a language code is outside the
// supported set.
type NotSupportedError struct {
	Code string
}

// Error implements the error interface.
func (e NotSupportedError) Error() string {
	return fmt.Sprintf("language %q is not supported", e.Code)
}

// New resolves a two-letter ISO 639-1 code, ignoring case.
func New(code string) (Language, error) {
	l, ok := supported[strings.ToLower(code)]
	if !ok {
		return Language{}, NotSupportedError{Code: code}
	}
	return l, nil
}

// Supported lists all supported languages, ordered by code.
func Supported() []Language {
	ls := make([]Language, 0, len(supported))
	for _, l := range supported {
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool {
		return ls[i].code < ls[j].code
	})
	return ls
}

// Code returns the two-letter ISO 639-1 code, e.g. "en".
func (l Language) Code() string {
	return l.code
}

// Name returns the English display name, e.g. "German" for de.
func (l Language) Name() string {
	return display.English.Tags().Name(l.tag)
}

// String implements the fmt.Stringer interface.
func (l Language) String() string {
	return l.code
}

// Tag returns the underlying BCP 47 tag.
func (l Language) Tag() language.Tag {
	return l.tag
}

// Pronoun type expressions pair the types a pronoun may refer to with
// the types it may not, as "t1,t2+:-t3,t4". The counter part is
// optional.
var pronouns = map[string]map[string]string{
	"en": {
		"my":  "wordnet_person_100007846",
		"he":  "wordnet_person_100007846",
		"his": "wordnet_person_100007846",
		"she": "wordnet_person_100007846",
		"her": "wordnet_person_100007846",
		"it":  "wordnet_entity_100001740+:-wordnet_person_100007846",
	},
}

// IsPronoun reports whether the word is a known pronoun of the
// language, ignoring case.
func (l Language) IsPronoun(word string) bool {
	_, ok := pronouns[l.code][strings.ToLower(word)]
	return ok
}

// PronounTypes returns the entity types the pronoun may refer to. The
// second return is false when the word is not a known pronoun of the
// language.
func (l Language) PronounTypes(word string) ([]string, bool) {
	expr, ok := pronouns[l.code][strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	types, _ := splitTypes(expr)
	return types, true
}

// PronounCounterTypes returns the entity types the pronoun may not
// refer to. The second return is false when the word is not a known
// pronoun of the language.
func (l Language) PronounCounterTypes(word string) ([]string, bool) {
	expr, ok := pronouns[l.code][strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	_, counter := splitTypes(expr)
	return counter, true
}

func splitTypes(expr string) (types, counterTypes []string) {
	pos, neg, _ := strings.Cut(expr, "+:-")
	return splitList(pos), splitList(neg)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
