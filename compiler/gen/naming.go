package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.Und, cases.NoLower)

// Table returns the conventional storage name for an entity: the
// pluralized snake_case form of its name ("OrderItem" -> "order_items").
func Table(name string) string {
	return inflect.Pluralize(inflect.Underscore(name))
}

// Label returns the snake_case label of a name, used for logging and
// diagnostics ("OrderItem" -> "order_item").
func Label(name string) string {
	return inflect.Underscore(name)
}

// Pascal converts a snake_case name to its exported Go form
// ("company_id" -> "CompanyID"). Well-known initialisms keep their
// conventional casing.
func Pascal(name string) string {
	parts := strings.Split(inflect.Underscore(name), "_")
	for i, p := range parts {
		switch strings.ToUpper(p) {
		case "ID", "URL", "UUID", "API", "JSON", "SQL":
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = title.String(p)
		}
	}
	return strings.Join(parts, "")
}
