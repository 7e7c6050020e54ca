// Package listing is the pure filter/sort/paginate pipeline behind the
// destination views. It performs no I/O and never mutates its input; the
// store's single-field query vocabulary means every compound predicate is
// resolved here.
package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/voyago/voyago/internal/domain"
)

// DefaultPageSize matches the dashboard card grid.
const DefaultPageSize = 6

type Page struct {
	Items      []domain.Destination
	TotalItems int
	TotalPages int
}

// Paginate applies the filter spec, orders by sortKey, and slices out the
// requested 1-indexed page. A page past the end yields an empty item list,
// not an error; clamping the page number is the caller's job.
func Paginate(records []domain.Destination, spec domain.FilterSpec, sortKey domain.SortKey, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filtered := make([]domain.Destination, 0, len(records))
	for _, record := range records {
		if Matches(record, spec) {
			filtered = append(filtered, record)
		}
	}
	sortRecords(filtered, sortKey)

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= total {
		return Page{Items: []domain.Destination{}, TotalItems: total, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{Items: filtered[start:end], TotalItems: total, TotalPages: totalPages}
}

// Matches evaluates the conjunction of the spec's predicates against one
// record. Empty search and type are vacuously true; a record without a
// price range fails an active price filter.
func Matches(record domain.Destination, spec domain.FilterSpec) bool {
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		name := strings.ToLower(record.Name)
		location := strings.ToLower(record.Location)
		if !strings.Contains(name, needle) && !strings.Contains(location, needle) {
			return false
		}
	}
	if spec.Type != "" && record.Type != spec.Type {
		return false
	}
	if record.Rating < spec.MinRating {
		return false
	}
	if spec.PriceRange != nil {
		if record.PriceRange == nil {
			return false
		}
		if record.PriceRange.Min < spec.PriceRange.Min || record.PriceRange.Max > spec.PriceRange.Max {
			return false
		}
	}
	return true
}

func sortRecords(records []domain.Destination, key domain.SortKey) {
	switch key {
	case domain.SortByName:
		collator := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Name, records[j].Name) < 0
		})
	case domain.SortByPrice:
		sort.SliceStable(records, func(i, j int) bool {
			return priceFloor(records[i]) < priceFloor(records[j])
		})
	case domain.SortByReviews:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].ReviewCount() > records[j].ReviewCount()
		})
	default:
		// rating, and the fallback for unknown keys
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Rating > records[j].Rating
		})
	}
}

func priceFloor(record domain.Destination) float64 {
	if record.PriceRange == nil {
		return 0
	}
	return record.PriceRange.Min
}
