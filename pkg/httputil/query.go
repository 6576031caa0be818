package httputil

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

const (
	urlToParamSep   = "?"
	paramToParamSep = "&"
	keyValueSep     = "="
)

// AddParamsToURL appends params to rawURL as key=value pairs in key order.
// It starts with '?' unless rawURL already has a query. Keys and values
// are form-encoded. A blank rawURL or empty params returns rawURL as is.
func AddParamsToURL(rawURL string, params map[string]string) (string, error) {
	values := make(url.Values, len(params))
	for key, value := range params {
		values.Set(key, value)
	}
	return AddValuesToURL(rawURL, values)
}

// AddValuesToURL is AddParamsToURL for multi-valued parameters. Values of a
// repeated key keep their order.
func AddValuesToURL(rawURL string, values url.Values) (string, error) {
	if strings.TrimSpace(rawURL) == "" || len(values) == 0 {
		return rawURL, nil
	}

	var b strings.Builder
	b.WriteString(rawURL)

	sep := urlToParamSep
	if strings.Contains(rawURL, urlToParamSep) {
		sep = paramToParamSep
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if strings.TrimSpace(key) == "" {
			return "", fmt.Errorf("add params to %q: %w", rawURL, ErrEmptyParamKey)
		}
		for _, value := range values[key] {
			b.WriteString(sep)
			b.WriteString(url.QueryEscape(key))
			b.WriteString(keyValueSep)
			b.WriteString(url.QueryEscape(value))
			sep = paramToParamSep
		}
	}

	return b.String(), nil
}
