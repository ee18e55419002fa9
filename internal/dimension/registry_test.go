package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalasCompletas(t *testing.T) {
	names := Names()
	require.Len(t, names, 10)

	for _, name := range names {
		s := GetScale(name)
		require.NotNil(t, s, "falta la escala %s", name)
		require.Len(t, s.Levels, 5, "escala %s", name)

		// niveles 1..5 ascendentes, con label, ejemplos y color
		for i, l := range s.Levels {
			assert.Equal(t, i+1, l.Value, "escala %s", name)
			assert.NotEmpty(t, l.Label)
			assert.NotEmpty(t, l.Examples)
			assert.NotEmpty(t, l.Color)
		}
	}
}

func TestLookupsConFallback(t *testing.T) {
	require.NotNil(t, GetLevel("serotonin", 3))
	assert.Equal(t, "Neutral", GetLevel("serotonin", 3).Label)

	assert.Nil(t, GetLevel("serotonin", 0))
	assert.Nil(t, GetLevel("serotonin", 6))
	assert.Nil(t, GetLevel("no_existe", 3))

	assert.Equal(t, "Unknown level", Description("serotonin", 9))
	assert.Empty(t, Examples("no_existe", 1))

	// color con gris neutral de respaldo
	assert.Equal(t, "#64748b", Color("serotonin", 0))
	assert.NotEqual(t, "#64748b", Color("serotonin", 5))
}

func TestFromTenPointBandas(t *testing.T) {
	cases := map[float64]int{
		0: 1, 1: 1,
		1.5: 2, 3: 2,
		3.1: 3, 6: 3,
		6.5: 4, 8: 4,
		8.1: 5, 10: 5,
	}
	for in, want := range cases {
		assert.Equal(t, want, FromTenPoint(in), "FromTenPoint(%v)", in)
	}

	// monótona no decreciente
	prev := FromTenPoint(0)
	for v := 0.0; v <= 10.0; v += 0.25 {
		got := FromTenPoint(v)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}

	// la inversa por tope de banda es identidad sobre 1..5
	for v := 1; v <= 5; v++ {
		assert.Equal(t, v, FromTenPoint(ToTenPoint(v)))
	}
}

func TestToPercentExtremos(t *testing.T) {
	assert.Equal(t, 0.0, ToPercent(1))
	assert.Equal(t, 100.0, ToPercent(5))
	assert.Equal(t, 50.0, ToPercent(3))
}

func TestClampYRoundHalf(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0.2))
	assert.Equal(t, 5.0, Clamp(7))
	assert.Equal(t, 3.4, Clamp(3.4))

	assert.Equal(t, 3.5, RoundHalf(3.4))
	assert.Equal(t, 3.0, RoundHalf(3.2))
	assert.Equal(t, 4.5, RoundHalf(4.6))
}
