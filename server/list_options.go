package server

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query encodes list options the way the v1.0 API expects them: repeated
// fields/sort_key/sort_dir parameters, limit for the page size and
// verbose=True for detailed listings.
func (o ListOptions) Query() url.Values {
	values := url.Values{}

	filterKeys := make([]string, 0, len(o.Filters))
	for key := range o.Filters {
		filterKeys = append(filterKeys, key)
	}
	sort.Strings(filterKeys)
	for _, key := range filterKeys {
		for _, value := range o.Filters[key] {
			values.Add(key, value)
		}
	}

	for _, field := range o.Fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			values.Add("fields", trimmed)
		}
	}
	if o.PageSize > 0 {
		values.Set("limit", strconv.Itoa(o.PageSize))
	}
	for _, key := range o.SortKeys {
		values.Add("sort_key", key)
	}
	for _, dir := range o.SortDirs {
		values.Add("sort_dir", dir)
	}
	if o.Verbose {
		values.Set("verbose", "True")
	}

	return values
}
