// Package i18n holds the user-facing message tables and picks one from an
// Accept-Language header.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

type Key string

const (
	HallsFound       Key = "halls_found"
	NoFavorites      Key = "no_favorites"
	NoResults        Key = "no_results"
	MethodNotAllowed Key = "method_not_allowed"
	BadRequest       Key = "bad_request"
	NotFound         Key = "not_found"
	InternalError    Key = "internal_error"
)

var tables = map[language.Tag]map[Key]string{
	language.English: {
		HallsFound:       "%d halls found",
		NoFavorites:      "You have no favorite halls yet",
		NoResults:        "No halls match your search",
		MethodNotAllowed: "method not allowed",
		BadRequest:       "bad request",
		NotFound:         "not found",
		InternalError:    "internal server error",
	},
	language.Dutch: {
		HallsFound:       "%d hallen gevonden",
		NoFavorites:      "Je hebt nog geen favoriete hallen",
		NoResults:        "Geen hallen gevonden voor je zoekopdracht",
		MethodNotAllowed: "methode niet toegestaan",
		BadRequest:       "ongeldig verzoek",
		NotFound:         "niet gevonden",
		InternalError:    "interne serverfout",
	},
}

// English first: it is the default when nothing matches.
var matcher = language.NewMatcher([]language.Tag{language.English, language.Dutch})

// Messages is one language's message table.
type Messages struct {
	Tag   language.Tag
	table map[Key]string
}

// Negotiate returns the best supported table for an Accept-Language value.
func Negotiate(acceptLanguage string) Messages {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()

	for t, table := range tables {
		if b, _ := t.Base(); b == base {
			return Messages{Tag: t, table: table}
		}
	}
	return Messages{Tag: language.English, table: tables[language.English]}
}

// Text formats the message for key. Unknown keys render as the key itself.
func (m Messages) Text(key Key, args ...any) string {
	format, ok := m.table[key]
	if !ok {
		return string(key)
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
