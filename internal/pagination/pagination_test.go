package pagination

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

func TestPaginate_Metadata(t *testing.T) {
	t.Parallel()

	items := seq(25)

	tests := []struct {
		name      string
		page      int
		wantItems []int
		wantPrev  *int
		wantNext  *int
		hasPrev   bool
		hasNext   bool
		counter   int
	}{
		{
			name:      "first page",
			page:      1,
			wantItems: seq(10),
			wantNext:  intPtr(2),
			hasNext:   true,
			counter:   1,
		},
		{
			name:      "last partial page",
			page:      3,
			wantItems: []int{21, 22, 23, 24, 25},
			wantPrev:  intPtr(2),
			hasPrev:   true,
			counter:   21,
		},
		{
			name:      "past the end",
			page:      4,
			wantItems: []int{},
			wantPrev:  intPtr(3),
			hasPrev:   true,
			counter:   31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Paginate(items, tt.page, 10)

			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, 25, p.TotalDocs)
			assert.Equal(t, 3, p.TotalPages)
			assert.Equal(t, 10, p.Limit)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.hasPrev, p.HasPrevPage)
			assert.Equal(t, tt.hasNext, p.HasNextPage)
			assert.Equal(t, tt.wantPrev, p.PrevPage)
			assert.Equal(t, tt.wantNext, p.NextPage)
			assert.Equal(t, tt.counter, p.PagingCounter)
		})
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	t.Parallel()

	p := Paginate([]string{}, 1, 10)

	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
	assert.Nil(t, p.NextPage)
}

func TestPaginate_PageBelowOne(t *testing.T) {
	t.Parallel()

	p := Paginate(seq(5), 0, 2)

	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrevPage)
}

func TestPaginate_HugePageKeepsMetadataSane(t *testing.T) {
	t.Parallel()

	p := Paginate(seq(5), math.MaxInt, 2)

	assert.Empty(t, p.Items)
	assert.Equal(t, MaxPage, p.Page)
	assert.Positive(t, p.PagingCounter)
	require.NotNil(t, p.PrevPage)
	assert.Equal(t, MaxPage-1, *p.PrevPage)
	assert.False(t, p.HasNextPage)
}

func TestPaginate_ConcatenationReconstructsInput(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 9, 10, 11, 25, 100, 101} {
		for _, limit := range []int{1, 3, 10, 100} {
			items := seq(n)
			first := Paginate(items, 1, limit)

			rebuilt := []int{}
			for page := 1; page <= first.TotalPages; page++ {
				rebuilt = append(rebuilt, Paginate(items, page, limit).Items...)
			}

			assert.Equal(t, items, rebuilt, "n=%d limit=%d", n, limit)
		}
	}
}

func TestPage_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("default key", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(Paginate(seq(3), 1, 2))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))

		assert.Equal(t, []any{float64(1), float64(2)}, got["docs"])
		assert.Equal(t, float64(3), got["totalDocs"])
		assert.Nil(t, got["prevPage"])
		assert.Equal(t, float64(2), got["nextPage"])
		assert.Contains(t, got, "prevPage")
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(Paginate([]string{"a"}, 1, 10, WithItemsKey("videos")))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))

		assert.Equal(t, []any{"a"}, got["videos"])
		assert.NotContains(t, got, "docs")
	})
}

func intPtr(v int) *int {
	return &v
}
