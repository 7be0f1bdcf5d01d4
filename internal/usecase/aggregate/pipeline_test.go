package aggregate

import (
	"cmp"
	"context"
	"testing"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID      int
	OwnerID string
	Title   string
	Score   int

	Owner     *author
	LikeCount int64
}

type author struct {
	Name     string
	Password string
}

type postView struct {
	ID        int
	Title     string
	OwnerName string
	LikeCount int64
}

func shapePost(p *post) postView {
	v := postView{ID: p.ID, Title: p.Title, LikeCount: p.LikeCount}
	if p.Owner != nil {
		v.OwnerName = p.Owner.Name
	}

	return v
}

var postSorts = SortSpec[post]{
	DefaultKey:       "id",
	DefaultDirection: Asc,
	Keys: map[string]func(a, b *post) int{
		"id":    func(a, b *post) int { return cmp.Compare(a.ID, b.ID) },
		"score": func(a, b *post) int { return cmp.Compare(a.Score, b.Score) },
	},
}

func rows(ps ...post) func(context.Context) ([]*post, error) {
	return func(context.Context) ([]*post, error) {
		out := make([]*post, 0, len(ps))
		for i := range ps {
			p := ps[i]
			out = append(out, &p)
		}

		return out, nil
	}
}

type lookupRecorder struct {
	calls int
	keys  []string
}

func (r *lookupRecorder) authors(known map[string]*author) func(context.Context, []string) (map[string]*author, error) {
	return func(_ context.Context, keys []string) (map[string]*author, error) {
		r.calls++
		r.keys = append(r.keys, keys...)

		out := map[string]*author{}
		for _, k := range keys {
			if a, ok := known[k]; ok {
				out[k] = a
			}
		}

		return out, nil
	}
}

func TestPipeline_EmbedBatchesDistinctKeys(t *testing.T) {
	t.Parallel()

	rec := &lookupRecorder{}
	p := Pipeline[post, postView]{
		Filter: rows(post{ID: 1, OwnerID: "a"}, post{ID: 2, OwnerID: "a"}, post{ID: 3, OwnerID: "b"}),
		Stages: []Stage[post]{
			Embed(func(p *post) string { return p.OwnerID },
				rec.authors(map[string]*author{"a": {Name: "alice", Password: "secret"}}),
				func(p *post, a *author) { p.Owner = a }),
		},
		Shape: shapePost,
	}

	views, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.calls)
	assert.ElementsMatch(t, []string{"a", "b"}, rec.keys)
	require.Len(t, views, 3)
	assert.Equal(t, "alice", views[0].OwnerName)
	assert.Equal(t, "alice", views[1].OwnerName)
	assert.Equal(t, "", views[2].OwnerName, "row without a match is kept")
}

func TestPipeline_EmbedRequiredDropsUnmatched(t *testing.T) {
	t.Parallel()

	rec := &lookupRecorder{}
	p := Pipeline[post, postView]{
		Filter: rows(post{ID: 1, OwnerID: "a"}, post{ID: 2, OwnerID: "ghost"}),
		Stages: []Stage[post]{
			EmbedRequired(func(p *post) string { return p.OwnerID },
				rec.authors(map[string]*author{"a": {Name: "alice"}}),
				func(p *post, a *author) { p.Owner = a }),
		},
		Shape: shapePost,
	}

	views, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 1, views[0].ID)
}

func TestPipeline_CountAttachesCardinality(t *testing.T) {
	t.Parallel()

	likes := map[int][]string{1: {"u1", "u2", "u3"}, 3: {"u1"}}
	counter := func(_ context.Context, ids []int) (map[int]int64, error) {
		out := map[int]int64{}
		for _, id := range ids {
			if n := len(likes[id]); n > 0 {
				out[id] = int64(n)
			}
		}

		return out, nil
	}

	p := Pipeline[post, postView]{
		Filter: rows(post{ID: 1}, post{ID: 2}, post{ID: 3}),
		Stages: []Stage[post]{
			Count(func(p *post) int { return p.ID }, counter, func(p *post, n int64) { p.LikeCount = n }),
		},
		Shape: shapePost,
	}

	views, err := p.Run(context.Background())
	require.NoError(t, err)

	got := map[int]int64{}
	for _, v := range views {
		got[v.ID] = v.LikeCount
	}
	assert.Equal(t, map[int]int64{1: 3, 2: 0, 3: 1}, got)
}

func TestPipeline_SortAndWhere(t *testing.T) {
	t.Parallel()

	sort, err := postSorts.Resolve("score", "desc")
	require.NoError(t, err)

	p := Pipeline[post, postView]{
		Filter: rows(post{ID: 1, Score: 5}, post{ID: 2, Score: 9}, post{ID: 3, Score: 1}, post{ID: 4, Score: 7}),
		Stages: []Stage[post]{Where(func(p *post) bool { return p.ID != 4 })},
		Sort:   sort,
		Shape:  shapePost,
	}

	views, err := p.Run(context.Background())
	require.NoError(t, err)

	ids := make([]int, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{2, 1, 3}, ids)
}

func TestPipeline_EmptyAndRunOne(t *testing.T) {
	t.Parallel()

	called := false
	p := Pipeline[post, postView]{
		Filter: rows(),
		Stages: []Stage[post]{
			Count(func(p *post) int { return p.ID }, func(context.Context, []int) (map[int]int64, error) {
				called = true
				return nil, nil
			}, func(*post, int64) {}),
		},
		Shape: shapePost,
	}

	views, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
	assert.False(t, called, "stages are skipped once no rows remain")

	_, err = p.RunOne(context.Background())
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, domainerrors.ErrVideoNotFound, NotFoundOr(err, domainerrors.ErrVideoNotFound))
}

func TestPipeline_StageErrorStops(t *testing.T) {
	t.Parallel()

	boom := errors.New("lookup failed")
	p := Pipeline[post, postView]{
		Filter: rows(post{ID: 1}),
		Stages: []Stage[post]{
			Embed(func(p *post) int { return p.ID }, func(context.Context, []int) (map[int]string, error) {
				return nil, boom
			}, func(*post, string) {}),
		},
		Shape: shapePost,
	}

	_, err := p.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, boom, NotFoundOr(err, domainerrors.ErrVideoNotFound))
}

func TestSortSpec_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		direction string
		wantKey   string
		wantDir   Direction
		wantErr   bool
	}{
		{name: "defaults", wantKey: "id", wantDir: Asc},
		{name: "explicit", key: "score", direction: "DESC", wantKey: "score", wantDir: Desc},
		{name: "key only keeps default direction", key: "score", wantKey: "score", wantDir: Asc},
		{name: "unknown key", key: "password", wantErr: true},
		{name: "unknown direction", key: "id", direction: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sort, err := postSorts.Resolve(tt.key, tt.direction)
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := errors.AsType[domainerrors.AppError](err)
				require.True(t, ok)
				assert.Equal(t, "INVALID_SORT", appErr.ErrorCode())
				assert.Equal(t, 400, appErr.HTTPCode())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, sort.Key)
			assert.Equal(t, tt.wantDir, sort.Direction)
		})
	}
}
