package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// bodyValues reads the request body as a flat set of string fields.
//
// Clients of this API post either JSON objects or classic form encodings
// (HTML forms and curl default to application/x-www-form-urlencoded), so
// both are accepted. Values are flattened to strings because the services
// do their own best-effort coercion — a JSON number 30 and the form value
// "30" must behave identically downstream.
//
// Missing bodies are not an error: all fields are optional at this level
// and presence checks belong to the services.
func bodyValues(r *http.Request) (map[string]string, error) {
	values := map[string]string{}

	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return values, nil // empty body = no fields
			}
			return nil, fmt.Errorf("decoding JSON body: %w", err)
		}
		for k, v := range raw {
			switch val := v.(type) {
			case nil:
				// treat JSON null as absent
			case string:
				values[k] = val
			default:
				// numbers, booleans — render the same way they'd
				// arrive in a form field
				values[k] = fmt.Sprintf("%v", val)
			}
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parsing form body: %w", err)
	}
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}
	return values, nil
}
