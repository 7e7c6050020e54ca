package listing

import "github.com/voyago/voyago/internal/domain"

// Controller tracks the view's current filter, sort, and page, enforcing
// the reset-on-change rule: any change to the spec or the sort key snaps the
// page back to 1 before the next render. It expects a single caller, like
// the event loop that owns the view state.
type Controller struct {
	spec     domain.FilterSpec
	sortKey  domain.SortKey
	page     int
	pageSize int
}

func NewController(pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		sortKey:  domain.DefaultSortKey,
		page:     1,
		pageSize: pageSize,
	}
}

func (c *Controller) SetFilter(spec domain.FilterSpec) {
	if c.spec.Equal(spec) {
		return
	}
	c.spec = spec
	c.page = 1
}

func (c *Controller) SetSort(key domain.SortKey) {
	if key == "" {
		key = domain.DefaultSortKey
	}
	if c.sortKey == key {
		return
	}
	c.sortKey = key
	c.page = 1
}

// SetPage accepts any page number; an out-of-range request simply renders
// an empty page.
func (c *Controller) SetPage(page int) {
	c.page = page
}

func (c *Controller) Filter() domain.FilterSpec { return c.spec }
func (c *Controller) Sort() domain.SortKey      { return c.sortKey }
func (c *Controller) CurrentPage() int          { return c.page }

// Render runs the pipeline over the given records with the current state.
func (c *Controller) Render(records []domain.Destination) Page {
	return Paginate(records, c.spec, c.sortKey, c.page, c.pageSize)
}
