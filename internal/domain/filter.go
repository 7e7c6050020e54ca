package domain

// FilterSpec describes the conjunctive predicate applied to destination
// listings. Zero values are vacuous: an empty Search or Type matches
// everything, MinRating 0 excludes nothing, a nil PriceRange disables the
// price filter.
type FilterSpec struct {
	Search     string
	Type       DestinationType
	MinRating  float64
	PriceRange *PriceRange
}

func (f FilterSpec) Equal(other FilterSpec) bool {
	if f.Search != other.Search || f.Type != other.Type || f.MinRating != other.MinRating {
		return false
	}
	if (f.PriceRange == nil) != (other.PriceRange == nil) {
		return false
	}
	if f.PriceRange != nil && *f.PriceRange != *other.PriceRange {
		return false
	}
	return true
}

// SortKey selects the listing order.
type SortKey string

const (
	SortByRating  SortKey = "rating"  // descending, stable across ties
	SortByName    SortKey = "name"    // ascending, locale-aware
	SortByPrice   SortKey = "price"   // ascending by PriceRange.Min, missing treated as 0
	SortByReviews SortKey = "reviews" // descending by review count
)

// DefaultSortKey is applied when the caller supplies an empty or unknown key.
const DefaultSortKey = SortByRating
