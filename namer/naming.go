// Package namer contains the naming conventions used to derive the table names from the model types.
package namer

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_model'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-model'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseModel'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseModel'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// Plural wraps the 'namer' so that its result is pluralized - i.e. 'UserAddress' -> 'user_addresses'.
func Plural(namer Namer) Namer {
	return func(raw string) string {
		return inflection.Plural(namer(raw))
	}
}

// TableName is the default table naming convention - plural snake case of the type name.
var TableName = Plural(NamingSnake)
