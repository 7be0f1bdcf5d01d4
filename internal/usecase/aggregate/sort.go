package aggregate

import (
	"slices"
	"strings"

	domainerrors "vidtube/internal/domain/errors"
)

// Direction is the order of a sort key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is a resolved sort key and direction.
type Sort[T any] struct {
	Key       string
	Direction Direction
	compare   func(a, b *T) int
}

func (s *Sort[T]) apply(rows []*T) {
	if s.compare == nil {
		return
	}

	cmp := s.compare
	if s.Direction == Desc {
		cmp = func(a, b *T) int { return s.compare(b, a) }
	}
	slices.SortStableFunc(rows, cmp)
}

// SortSpec is the whitelist of sort keys a view accepts, with its default.
type SortSpec[T any] struct {
	DefaultKey       string
	DefaultDirection Direction
	Keys             map[string]func(a, b *T) int
}

// Resolve validates a caller's key and direction. Empty values fall back to the defaults.
func (s SortSpec[T]) Resolve(key, direction string) (*Sort[T], error) {
	if key == "" {
		key = s.DefaultKey
	}

	compare, ok := s.Keys[key]
	if !ok {
		return nil, domainerrors.ErrInvalidSort.WithDetails("unknown sort key: " + key)
	}

	dir := s.DefaultDirection
	if direction != "" {
		switch Direction(strings.ToLower(direction)) {
		case Asc:
			dir = Asc
		case Desc:
			dir = Desc
		default:
			return nil, domainerrors.ErrInvalidSort.WithDetails("unknown sort direction: " + direction)
		}
	}

	return &Sort[T]{Key: key, Direction: dir, compare: compare}, nil
}

// Default returns the view's default sort.
func (s SortSpec[T]) Default() *Sort[T] {
	return &Sort[T]{Key: s.DefaultKey, Direction: s.DefaultDirection, compare: s.Keys[s.DefaultKey]}
}
