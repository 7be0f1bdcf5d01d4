// Package aggregate composes read models from primary rows and batched lookups.
//
// A Pipeline runs Filter, then each Stage in order, then Sort, then Shape.
// Join stages gather the foreign keys of every surviving row and call their
// lookup once per run, so a page of N rows costs one query per stage.
package aggregate

import (
	"context"
	"slices"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
)

// ErrNoMatch is returned by RunOne when the filter and stages leave no rows.
var ErrNoMatch = errors.New("aggregate: no matching row")

// Stage transforms the working set. It may drop rows but must not reorder them.
type Stage[T any] func(ctx context.Context, rows []*T) ([]*T, error)

// Pipeline builds views of type V from rows of type T.
type Pipeline[T, V any] struct {
	Filter func(ctx context.Context) ([]*T, error)
	Stages []Stage[T]
	Sort   *Sort[T]
	Shape  func(row *T) V
}

// Run executes the pipeline. Zero rows yield an empty, non-nil slice.
func (p Pipeline[T, V]) Run(ctx context.Context) ([]V, error) {
	rows, err := p.Filter(ctx)
	if err != nil {
		return nil, err
	}

	for _, stage := range p.Stages {
		if len(rows) == 0 {
			break
		}
		if rows, err = stage(ctx, rows); err != nil {
			return nil, err
		}
	}

	if p.Sort != nil {
		p.Sort.apply(rows)
	}

	views := make([]V, 0, len(rows))
	for _, row := range rows {
		views = append(views, p.Shape(row))
	}

	return views, nil
}

// RunOne executes the pipeline and returns the first view, or ErrNoMatch.
func (p Pipeline[T, V]) RunOne(ctx context.Context) (V, error) {
	var zero V

	views, err := p.Run(ctx)
	if err != nil {
		return zero, err
	}
	if len(views) == 0 {
		return zero, ErrNoMatch
	}

	return views[0], nil
}

// Embed attaches at most one related record per row. Rows without a match are kept.
func Embed[T any, K comparable, R any](
	keyOf func(*T) K,
	lookup func(ctx context.Context, keys []K) (map[K]R, error),
	attach func(row *T, related R),
) Stage[T] {
	return embed(keyOf, lookup, attach, false)
}

// EmbedRequired is Embed that drops rows whose key has no match.
func EmbedRequired[T any, K comparable, R any](
	keyOf func(*T) K,
	lookup func(ctx context.Context, keys []K) (map[K]R, error),
	attach func(row *T, related R),
) Stage[T] {
	return embed(keyOf, lookup, attach, true)
}

func embed[T any, K comparable, R any](
	keyOf func(*T) K,
	lookup func(ctx context.Context, keys []K) (map[K]R, error),
	attach func(row *T, related R),
	required bool,
) Stage[T] {
	return func(ctx context.Context, rows []*T) ([]*T, error) {
		related, err := lookup(ctx, distinctKeys(rows, keyOf))
		if err != nil {
			return nil, err
		}

		kept := rows[:0:0]
		for _, row := range rows {
			match, ok := related[keyOf(row)]
			if !ok {
				if !required {
					kept = append(kept, row)
				}
				continue
			}
			attach(row, match)
			kept = append(kept, row)
		}

		return kept, nil
	}
}

// Count attaches a cardinality per row. A key missing from the counter's result counts as zero.
func Count[T any, K comparable](
	keyOf func(*T) K,
	counter func(ctx context.Context, keys []K) (map[K]int64, error),
	attach func(row *T, n int64),
) Stage[T] {
	return func(ctx context.Context, rows []*T) ([]*T, error) {
		counts, err := counter(ctx, distinctKeys(rows, keyOf))
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			attach(row, counts[keyOf(row)])
		}

		return rows, nil
	}
}

// Where keeps the rows for which keep returns true.
func Where[T any](keep func(*T) bool) Stage[T] {
	return func(_ context.Context, rows []*T) ([]*T, error) {
		return slices.DeleteFunc(rows, func(row *T) bool { return !keep(row) }), nil
	}
}

func distinctKeys[T any, K comparable](rows []*T, keyOf func(*T) K) []K {
	seen := make(map[K]struct{}, len(rows))
	keys := make([]K, 0, len(rows))
	for _, row := range rows {
		k := keyOf(row)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	return keys
}

// NotFoundOr maps ErrNoMatch to notFound and passes every other error through.
func NotFoundOr(err error, notFound *domainerrors.BaseError) error {
	if errors.Is(err, ErrNoMatch) {
		return notFound
	}

	return err
}
