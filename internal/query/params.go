package query

import (
	"net/url"
	"strconv"
)

// ListParams carries the generic list-endpoint query string parameters
// (q, page, limit, sort, orderby).
type ListParams struct {
	Query   string
	Page    int // 0 means absent
	Limit   int // 0 means absent
	Sort    string
	OrderBy string
}

// ParseListParams extracts list parameters from a request query string.
// Non-numeric or sub-1 page/limit values are treated as absent, which
// disables pagination entirely (both must be present).
func ParseListParams(values url.Values) ListParams {
	p := ListParams{
		Query:   values.Get("q"),
		Sort:    values.Get("sort"),
		OrderBy: values.Get("orderby"),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit >= 1 {
		p.Limit = limit
	}

	return p
}
