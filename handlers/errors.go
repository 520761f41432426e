package handlers

import (
	"strconv"

	"github.com/pocketbase/pocketbase/core"
)

// jsonError writes a JSON error body with the given status. Handlers use it
// for every failure path so API clients get a uniform shape.
func jsonError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// formFloat parses a required positive float form field. The bool result
// reports whether a usable value was found; the caller decides the error
// response.
func formFloat(e *core.RequestEvent, name string) (float64, bool) {
	val, err := strconv.ParseFloat(e.Request.FormValue(name), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
