// Package pagination slices an in-memory result set into pages and reports page metadata.
package pagination

import (
	"encoding/json"
	"math"
)

const (
	// DefaultItemsKey is the JSON key the items are serialized under unless overridden.
	DefaultItemsKey = "docs"
	// MaxPage and MaxLimit clamp the inputs of Paginate.
	MaxPage  = math.MaxInt32
	MaxLimit = math.MaxInt32
)

// Page is one page of items plus the metadata describing its position in the full set.
type Page[T any] struct {
	Items         []T
	ItemsKey      string
	TotalDocs     int
	Limit         int
	Page          int
	TotalPages    int
	PagingCounter int
	HasPrevPage   bool
	HasNextPage   bool
	PrevPage      *int
	NextPage      *int
}

// Option customizes a Page.
type Option func(*options)

type options struct {
	itemsKey string
}

// WithItemsKey sets the JSON key the items are serialized under, e.g. "videos".
func WithItemsKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.itemsKey = key
		}
	}
}

// Paginate returns page of items, limit items per page. Page numbering starts at 1.
// A page outside 1..TotalPages yields no items but keeps the metadata.
// limit must be positive; callers coerce query input before calling.
func Paginate[T any](items []T, page, limit int, opts ...Option) *Page[T] {
	o := options{itemsKey: DefaultItemsKey}
	for _, opt := range opts {
		opt(&o)
	}

	limit = min(max(limit, 1), MaxLimit)
	page = min(page, MaxPage)

	total := len(items)
	totalPages := (total + limit - 1) / limit

	p := &Page[T]{
		Items:         []T{},
		ItemsKey:      o.itemsKey,
		TotalDocs:     total,
		Limit:         limit,
		Page:          page,
		TotalPages:    totalPages,
		PagingCounter: (page-1)*limit + 1,
		HasPrevPage:   page > 1,
		HasNextPage:   page < totalPages,
	}

	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}

	if page >= 1 && page <= totalPages {
		start := (page - 1) * limit
		end := min(start+limit, total)
		p.Items = items[start:end]
	}

	return p
}

// MarshalJSON places the items under ItemsKey next to the metadata fields.
func (p *Page[T]) MarshalJSON() ([]byte, error) {
	key := p.ItemsKey
	if key == "" {
		key = DefaultItemsKey
	}

	items := p.Items
	if items == nil {
		items = []T{}
	}

	return json.Marshal(map[string]any{
		key:             items,
		"totalDocs":     p.TotalDocs,
		"limit":         p.Limit,
		"page":          p.Page,
		"totalPages":    p.TotalPages,
		"pagingCounter": p.PagingCounter,
		"hasPrevPage":   p.HasPrevPage,
		"hasNextPage":   p.HasNextPage,
		"prevPage":      p.PrevPage,
		"nextPage":      p.NextPage,
	})
}
