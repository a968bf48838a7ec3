package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter whose "form" tag
// names a parameter that is set in the query string of url.
//
// This allows to distinguish between a parameter that is not set and a
// parameter that is set to the zero value.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if param != "" && query.Has(param) {
			setFields = append(setFields, field)
		}
	}
	return setFields
}
