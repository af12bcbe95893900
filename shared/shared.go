package shared

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hotelier/shared/constant"

	"github.com/go-chi/chi/v5"
)

// ParseInt converts a form value to int. An empty value is 0.
func ParseInt(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return 0, nil
	}

	res, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", field, err)
	}

	return res, nil
}

// ParseFloat converts a form value to float64. An empty value is 0.
func ParseFloat(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return 0, nil
	}

	res, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %w", field, err)
	}

	return res, nil
}

// ParseStringList reads a list sent under one form key. Repeated values are
// one item each. A lone value may be a JSON array or a comma-separated list.
// Blank items are dropped.
func ParseStringList(values []string) []string {
	if len(values) != 1 {
		return CompactStrings(values)
	}

	value := strings.TrimSpace(values[0])

	if strings.HasPrefix(value, "[") {
		var items []string
		if err := json.Unmarshal([]byte(value), &items); err == nil {
			return CompactStrings(items)
		}
	}

	return CompactStrings(strings.Split(value, ","))
}

// CompactStrings trims every value and drops the blank ones.
func CompactStrings(values []string) []string {
	res := []string{}

	for _, value := range values {
		if value = strings.TrimSpace(value); value != constant.Empty {
			res = append(res, value)
		}
	}

	return res
}

// PathParam returns the decoded route parameter. chi matches on the escaped
// path whenever URL.RawPath is set, so the value is unescaped in that case.
func PathParam(request *http.Request, key string) string {
	value := chi.URLParam(request, key)

	if request.URL.RawPath == constant.Empty {
		return value
	}

	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}

	return value
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// IsJSONRequest reports whether the request body is declared as JSON.
func IsJSONRequest(request *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get(constant.RequestHeaderContentType))

	return mediaType == constant.ContentTypeJSON
}
