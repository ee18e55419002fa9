package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/models"
)

func pelicula(id string, seen bool) models.Movie {
	return models.Movie{ID: id, Title: "Película " + id, Seen: seen}
}

func TestStoreEstados(t *testing.T) {
	st := NewStore()
	assert.Equal(t, StateUninitialized, st.State())

	st.SetLoading()
	assert.Equal(t, StateLoading, st.State())

	st.SetReady(models.CatalogSummary{Count: 0}, time.Now())
	assert.Equal(t, StateReady, st.State())
}

func TestStoreInsertYGet(t *testing.T) {
	st := NewStore()
	r := models.Rating{ID: "r1", MovieID: "m1", Overall: 4, Source: models.RatingSourceSynthesized}
	st.Insert(pelicula("m1", false), &r)
	st.Insert(pelicula("m2", false), nil)

	m, ok := st.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "m1", m.ID)

	got, ok := st.GetRating("m1")
	require.True(t, ok)
	assert.Equal(t, "r1", got.ID)

	_, ok = st.GetRating("m2")
	assert.False(t, ok)

	// Reinsertar no duplica el orden.
	st.Insert(pelicula("m1", true), nil)
	assert.Equal(t, 2, st.Count())
}

func TestStoreUpdateSeen(t *testing.T) {
	st := NewStore()
	st.Insert(pelicula("m1", false), nil)

	require.NoError(t, st.UpdateSeen("m1", true))
	m, _ := st.Get("m1")
	assert.True(t, m.Seen)

	err := st.UpdateSeen("fantasma", true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreEnumerateUnseenOrdenEstable(t *testing.T) {
	st := NewStore()
	for i := 1; i <= 5; i++ {
		st.Insert(pelicula(fmt.Sprintf("m%d", i), i%2 == 0), nil)
	}
	unseen := st.EnumerateUnseen()
	require.Len(t, unseen, 3)
	assert.Equal(t, "m1", unseen[0].ID)
	assert.Equal(t, "m3", unseen[1].ID)
	assert.Equal(t, "m5", unseen[2].ID)
}

func TestStoreSnapshotRestore(t *testing.T) {
	st := NewStore()
	r := models.Rating{ID: "r1", MovieID: "m1", Source: models.RatingSourceSynthesized}
	st.Insert(pelicula("m1", true), &r)
	st.Insert(pelicula("m2", false), nil)
	cuando := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	st.SetReady(models.CatalogSummary{Count: 2, AvgConfidence: 0.6}, cuando)

	doc := st.Snapshot()
	require.Len(t, doc.Movies, 2)
	require.Len(t, doc.SynthesizedRatings, 1)
	assert.Equal(t, cuando, doc.PopulatedAt)

	otro := NewStore()
	otro.Restore(doc)
	assert.Equal(t, StateReady, otro.State())
	assert.Equal(t, 2, otro.Count())
	m, ok := otro.Get("m1")
	require.True(t, ok)
	assert.True(t, m.Seen)
	_, ok = otro.GetRating("m1")
	assert.True(t, ok)
	assert.Equal(t, 0.6, otro.Summary().AvgConfidence)
}

func TestStoreReplaceAllEsTodoONada(t *testing.T) {
	st := NewStore()
	st.Insert(pelicula("viejo", false), nil)

	nuevos := []models.Movie{pelicula("a", false), pelicula("b", false)}
	ratings := map[string]models.Rating{
		"a": {ID: "ra", MovieID: "a", Source: models.RatingSourceSynthesized},
	}
	st.ReplaceAll(nuevos, ratings, models.CatalogSummary{Count: 2}, time.Now())

	assert.Equal(t, StateReady, st.State())
	assert.Equal(t, 2, st.Count())
	_, ok := st.Get("viejo")
	assert.False(t, ok)
}
