package services

import (
	"boulderhall-service/internal/adapters/rating"
	"boulderhall-service/internal/adapters/source"
	"boulderhall-service/internal/domain"
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCatalogRefreshRatesHalls(t *testing.T) {
	src := source.NewStaticSource([]domain.Hall{hallA, hallB})
	c := NewCatalog(src, rating.NewRandom(rand.New(rand.NewPCG(1, 1))), zaptest.NewLogger(t))

	require.NoError(t, c.Refresh(context.Background()))

	halls := c.Halls()
	require.Len(t, halls, 2)
	for _, h := range halls {
		assert.GreaterOrEqual(t, h.Rating, rating.Min)
		assert.LessOrEqual(t, h.Rating, rating.Max)
	}
}

func TestCatalogKeepsPreviousListOnFailure(t *testing.T) {
	src := source.NewStaticSource([]domain.Hall{hallA})
	c := NewCatalog(src, rating.Stable{}, zaptest.NewLogger(t))

	require.NoError(t, c.Refresh(context.Background()))

	src.Set(nil, errors.New("network down"))
	err := c.Refresh(context.Background())
	require.Error(t, err)

	halls := c.Halls()
	require.Len(t, halls, 1)
	assert.Equal(t, "A", halls[0].Name)
}

func TestCatalogEmptyBeforeFirstSuccess(t *testing.T) {
	src := source.NewStaticSource(nil)
	src.Set(nil, errors.New("boom"))
	c := NewCatalog(src, nil, zaptest.NewLogger(t))

	require.Error(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Halls())
}

func TestCatalogRatingRegeneratedPerFetch(t *testing.T) {
	src := source.NewStaticSource([]domain.Hall{hallA})
	c := NewCatalog(src, &countingRater{}, zaptest.NewLogger(t))

	require.NoError(t, c.Refresh(context.Background()))
	first := c.Halls()[0].Rating
	require.NoError(t, c.Refresh(context.Background()))
	second := c.Halls()[0].Rating

	assert.NotEqual(t, first, second)
}

func TestCatalogHallsReturnsCopy(t *testing.T) {
	c := NewCatalog(source.NewStaticSource([]domain.Hall{hallA}), nil, zaptest.NewLogger(t))
	require.NoError(t, c.Refresh(context.Background()))

	halls := c.Halls()
	halls[0].Name = "mutated"

	got, ok := c.Find("A")
	assert.True(t, ok)
	assert.Equal(t, "Utrecht", got.City)

	_, ok = c.Find("mutated")
	assert.False(t, ok)
}

func TestCatalogConcurrentRefresh(t *testing.T) {
	src := source.NewStaticSource([]domain.Hall{hallA, hallB})
	c := NewCatalog(src, rating.NewRandom(nil), zaptest.NewLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Refresh(context.Background())
			_ = c.Halls()
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, src.Calls(), "refreshes are not de-duplicated")
	assert.Len(t, c.Halls(), 2)
}

type countingRater struct {
	mu sync.Mutex
	n  int
}

func (r *countingRater) Rate(domain.Hall) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.n++
	return 3.5 + float64(r.n%15)/10
}
