package listing

import (
	"testing"

	"github.com/voyago/voyago/internal/domain"
)

func TestControllerResetsPageOnFilterChange(t *testing.T) {
	c := NewController(2)
	c.SetPage(3)

	c.SetFilter(domain.FilterSpec{Search: "beach"})
	if c.CurrentPage() != 1 {
		t.Fatalf("filter change must reset to page 1, got %d", c.CurrentPage())
	}

	c.SetPage(2)
	// Re-applying an identical spec is not a change.
	c.SetFilter(domain.FilterSpec{Search: "beach"})
	if c.CurrentPage() != 2 {
		t.Fatalf("identical spec must not reset the page, got %d", c.CurrentPage())
	}

	c.SetFilter(domain.FilterSpec{Search: "beach", MinRating: 4})
	if c.CurrentPage() != 1 {
		t.Fatalf("minRating change must reset to page 1, got %d", c.CurrentPage())
	}
}

func TestControllerResetsPageOnSortChange(t *testing.T) {
	c := NewController(2)
	c.SetPage(4)

	c.SetSort(domain.SortByName)
	if c.CurrentPage() != 1 {
		t.Fatalf("sort change must reset to page 1, got %d", c.CurrentPage())
	}

	c.SetPage(2)
	c.SetSort(domain.SortByName)
	if c.CurrentPage() != 2 {
		t.Fatalf("unchanged sort must not reset the page, got %d", c.CurrentPage())
	}
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(0)
	if c.Sort() != domain.DefaultSortKey {
		t.Fatalf("expected default sort %q, got %q", domain.DefaultSortKey, c.Sort())
	}

	records := sampleRecords()
	page := c.Render(records)
	if len(page.Items) != len(records) {
		t.Fatalf("default page size should hold all %d sample records, got %d", len(records), len(page.Items))
	}
}
