package resource

import "net/url"

// Filter is a single-field equality predicate, the only filtering the flat
// resource store understands.
type Filter struct {
	Field string
	Value string
}

// Sort is a single-field ordering. The store supports at most one per query.
type Sort struct {
	Field     string
	Ascending bool
}

// Query is an explicit descriptor for one collection read. It is a plain
// value handed to Client.Execute; nothing about it is lazy or chained.
// Compound predicates (substring search, multi-field sort) are out of the
// store's vocabulary and must be resolved by the caller.
type Query struct {
	Collection string
	Filters    []Filter
	Sort       *Sort
}

func (q Query) encode() string {
	values := url.Values{}
	for _, f := range q.Filters {
		values.Set(f.Field, f.Value)
	}
	if q.Sort != nil {
		values.Set("_sort", q.Sort.Field)
		if q.Sort.Ascending {
			values.Set("_order", "asc")
		} else {
			values.Set("_order", "desc")
		}
	}
	return values.Encode()
}
