package body

import (
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/server"
)

const defaultSortDir = "asc"

type ListRequest struct {
	Fields      []string
	Filters     []string
	ShowDetails bool
	PageSize    int
	SortKeys    []string
	SortDirs    []string
}

// BuildListOptions turns list flags into query options.
func BuildListOptions(req ListRequest) (server.ListOptions, error) {
	if req.PageSize < 0 {
		return server.ListOptions{}, validationError("flag --page-size must not be negative", nil)
	}

	filters, err := ParseFilters(req.Filters)
	if err != nil {
		return server.ListOptions{}, err
	}

	for _, dir := range req.SortDirs {
		if dir != "asc" && dir != "desc" {
			return server.ListOptions{}, validationError(fmt.Sprintf("invalid --sort-dir %q: expected asc or desc", dir), nil)
		}
	}

	return server.ListOptions{
		Fields:   compactStrings(req.Fields),
		Filters:  filters,
		PageSize: req.PageSize,
		SortKeys: compactStrings(req.SortKeys),
		SortDirs: ReconcileSortDirs(compactStrings(req.SortKeys), req.SortDirs),
		Verbose:  req.ShowDetails,
	}, nil
}

// ReconcileSortDirs pads dirs with "asc" or truncates it so every sort key
// gets exactly one direction.
func ReconcileSortDirs(keys []string, dirs []string) []string {
	if len(keys) == 0 {
		return nil
	}

	reconciled := make([]string, len(keys))
	for idx := range keys {
		if idx < len(dirs) {
			reconciled[idx] = dirs[idx]
			continue
		}
		reconciled[idx] = defaultSortDir
	}
	return reconciled
}

// ParseFilters reads repeated key=value flags. Repeated keys accumulate.
func ParseFilters(values []string) (map[string][]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	filters := make(map[string][]string, len(values))
	for _, raw := range values {
		key, value, found := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, validationError(fmt.Sprintf("invalid --filter %q: expected key=value", raw), nil)
		}
		filters[key] = append(filters[key], strings.TrimSpace(value))
	}
	return filters, nil
}

func compactStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	compacted := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			compacted = append(compacted, trimmed)
		}
	}
	if len(compacted) == 0 {
		return nil
	}
	return compacted
}
