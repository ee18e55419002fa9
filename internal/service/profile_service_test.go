package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/models"
)

func userRating(movieID string, overall int, dims models.Vector) models.Rating {
	return models.Rating{MovieID: movieID, Dimensions: dims, Overall: overall}
}

func TestRegisterRatingActualizaPerfil(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()), entry("m2", models.NeutralVector()))
	svc := NewProfileService(newMemProfiles(), store, false)

	dims := vec(5, 4, 3, 5, 4, 2, 5, 4, 3, 2)
	profile, err := svc.RegisterRating(context.Background(), "u1", userRating("m1", 5, dims))
	require.NoError(t, err)

	assert.Equal(t, 1, profile.RatingsCount)
	assert.InDelta(t, 0.1, profile.Confidence, 1e-9)
	// Con un solo rating las preferencias son su vector.
	assert.Equal(t, dims, profile.Preferences)

	// La película queda marcada como vista.
	m, _ := store.Get("m1")
	assert.True(t, m.Seen)
}

func TestRegisterRatingReemplazaMismaPelicula(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()))
	svc := NewProfileService(newMemProfiles(), store, false)

	_, err := svc.RegisterRating(context.Background(), "u1", userRating("m1", 2, models.NeutralVector()))
	require.NoError(t, err)
	profile, err := svc.RegisterRating(context.Background(), "u1", userRating("m1", 5, vec(5, 5, 5, 5, 5, 5, 5, 5, 5, 5)))
	require.NoError(t, err)

	assert.Equal(t, 1, profile.RatingsCount)
	assert.Equal(t, 5, profile.Ratings[0].Overall)
}

func TestRegisterRatingRecientePesaMas(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()), entry("m2", models.NeutralVector()))
	svc := NewProfileService(newMemProfiles(), store, false)

	_, err := svc.RegisterRating(context.Background(), "u1", userRating("m1", 5, vec(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)))
	require.NoError(t, err)
	profile, err := svc.RegisterRating(context.Background(), "u1", userRating("m2", 5, vec(5, 5, 5, 5, 5, 5, 5, 5, 5, 5)))
	require.NoError(t, err)

	// Mismo overall: el rating más nuevo arrastra el promedio por encima de 3.
	assert.Greater(t, profile.Preferences.Serotonin, 3.0)
	assert.Less(t, profile.Preferences.Serotonin, 5.0)
}

func TestRegisterRatingValidaciones(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()))
	svc := NewProfileService(newMemProfiles(), store, false)
	ctx := context.Background()

	cases := []struct {
		nombre string
		rating models.Rating
		want   error
	}{
		{"overall fuera de rango", userRating("m1", 6, models.NeutralVector()), apperrors.ErrInvalidInput},
		{"dimensión no entera", userRating("m1", 3, vec(3.5, 3, 3, 3, 3, 3, 3, 3, 3, 3)), apperrors.ErrInvalidInput},
		{"dimensión fuera de rango", userRating("m1", 3, vec(0, 3, 3, 3, 3, 3, 3, 3, 3, 3)), apperrors.ErrInvalidInput},
		{"película inexistente", userRating("fantasma", 3, models.NeutralVector()), apperrors.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := svc.RegisterRating(ctx, "u1", tc.rating)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNeighborsRequiereDosEnComun(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()), entry("m2", models.NeutralVector()))
	profiles := newMemProfiles()
	svc := NewProfileService(profiles, store, false)
	ctx := context.Background()

	profiles.m["yo"] = models.UserProfile{
		UserID: "yo",
		Ratings: []models.Rating{
			userRating("m1", 5, models.NeutralVector()),
			userRating("m2", 4, models.NeutralVector()),
		},
	}
	// Solo una película en común: no cuenta como vecino.
	profiles.m["casi"] = models.UserProfile{
		UserID:  "casi",
		Ratings: []models.Rating{userRating("m1", 5, models.NeutralVector())},
	}
	// Dos en común con overalls parecidos.
	profiles.m["par"] = models.UserProfile{
		UserID: "par",
		Ratings: []models.Rating{
			userRating("m1", 5, models.NeutralVector()),
			userRating("m2", 4, models.NeutralVector()),
		},
	}

	sims, err := svc.Neighbors(ctx, "yo")
	require.NoError(t, err)
	require.Len(t, sims, 1)
	assert.Equal(t, "par", sims[0].UserID)
	assert.Equal(t, 2, sims[0].CommonRatings)
}

func TestNeighborsTopeDiez(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()))
	profiles := newMemProfiles()
	svc := NewProfileService(profiles, store, false)

	base := []models.Rating{
		userRating("m1", 5, models.NeutralVector()),
		userRating("m2", 4, models.NeutralVector()),
		userRating("m3", 2, models.NeutralVector()),
		userRating("m4", 5, models.NeutralVector()),
		userRating("m5", 1, models.NeutralVector()),
	}
	profiles.m["yo"] = models.UserProfile{UserID: "yo", Ratings: base}
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("otro%02d", i)
		profiles.m[id] = models.UserProfile{UserID: id, Ratings: base}
	}

	sims, err := svc.Neighbors(context.Background(), "yo")
	require.NoError(t, err)
	assert.Len(t, sims, 10)
	// Con similitud idéntica, el orden cae al id ascendente.
	assert.Equal(t, "otro00", sims[0].UserID)
}

func TestRegisterRatingRecalculaVecinos(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()), entry("m2", models.NeutralVector()))
	profiles := newMemProfiles()
	svc := NewProfileService(profiles, store, false)
	ctx := context.Background()

	profiles.m["otro"] = models.UserProfile{
		UserID: "otro",
		Ratings: []models.Rating{
			userRating("m1", 5, models.NeutralVector()),
			userRating("m2", 4, models.NeutralVector()),
		},
	}

	// Con una sola película en común todavía no hay vecinos.
	p, err := svc.RegisterRating(ctx, "yo", userRating("m1", 5, models.NeutralVector()))
	require.NoError(t, err)
	assert.Empty(t, p.Neighbors)

	// La segunda completa las dos en común: el vecino entra al perfil...
	p, err = svc.RegisterRating(ctx, "yo", userRating("m2", 4, models.NeutralVector()))
	require.NoError(t, err)
	assert.Equal(t, []string{"otro"}, p.Neighbors)

	// ...y queda en el blob persistido.
	assert.Equal(t, []string{"otro"}, profiles.m["yo"].Neighbors)
}

func TestCollaborativeBlenderApagadoOSinVecinos(t *testing.T) {
	store := readyStore(entry("m1", models.NeutralVector()))
	ctx := context.Background()

	// Toggle apagado.
	apagado := NewProfileService(newMemProfiles(), store, false)
	blend, err := apagado.CollaborativeBlender(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, blend)

	// Toggle prendido pero sin vecinos.
	solo := NewProfileService(newMemProfiles(), store, true)
	blend, err = solo.CollaborativeBlender(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, blend)
}

func TestCollaborativeBlenderMezclaPorGenero(t *testing.T) {
	drama1 := entry("m1", models.NeutralVector())
	drama1.movie.Genres = []string{"Drama"}
	drama2 := entry("m2", models.NeutralVector())
	drama2.movie.Genres = []string{"Drama", "Thriller"}
	nueva := entry("m3", models.NeutralVector())
	nueva.movie.Genres = []string{"Drama"}
	comedia := entry("m4", models.NeutralVector())
	comedia.movie.Genres = []string{"Comedy"}

	store := readyStore(drama1, drama2, nueva, comedia)
	profiles := newMemProfiles()
	svc := NewProfileService(profiles, store, true)

	profiles.m["yo"] = models.UserProfile{UserID: "yo", Ratings: []models.Rating{
		userRating("m1", 5, models.NeutralVector()),
		userRating("m2", 4, models.NeutralVector()),
	}}
	// El vecino calificó ambos dramas con vectores cargados a 5.
	profiles.m["vecino"] = models.UserProfile{UserID: "vecino", Ratings: []models.Rating{
		userRating("m1", 5, vec(5, 5, 5, 5, 5, 5, 5, 5, 5, 5)),
		userRating("m2", 4, vec(5, 5, 5, 5, 5, 5, 5, 5, 5, 5)),
	}}

	blend, err := svc.CollaborativeBlender(context.Background(), "yo")
	require.NoError(t, err)
	require.NotNil(t, blend)

	// m3 comparte "Drama": 0.6*3 + 0.4*5 = 3.8 en cada componente.
	out := blend(nueva.movie, models.NeutralVector())
	for _, name := range models.DimensionNames {
		assert.InDelta(t, 3.8, out.Get(name), 1e-9, name)
	}

	// Una comedia sin género en común queda con su predicción por metadata.
	sinCambios := blend(comedia.movie, models.NeutralVector())
	assert.Equal(t, models.NeutralVector(), sinCambios)
}
