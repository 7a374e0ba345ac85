package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func testResolver() *Resolver {
	return NewResolver([]Preset{
		{
			ID:        "p-1",
			Name:      "Kantor Pusat",
			Address:   "Jl. Jend. Sudirman No. 1, Jakarta",
			Latitude:  f64(-6.2087634567),
			Longitude: f64(106.8455991234),
		},
		{
			ID:      "p-2",
			Name:    "Remote",
			Address: "",
		},
	})
}

func TestResolvePresetWithCoordinatesWins(t *testing.T) {
	r := testResolver()
	prior := Resolved{
		Name:      "Custom",
		Address:   "somewhere else",
		Latitude:  f64(-7.95),
		Longitude: f64(112.61),
	}

	got, err := r.Resolve(prior, Choice{PresetKey: "Kantor Pusat"})
	require.NoError(t, err)

	assert.Equal(t, "Kantor Pusat", got.Name)
	assert.Equal(t, "Jl. Jend. Sudirman No. 1, Jakarta", got.Address)
	require.NotNil(t, got.Latitude)
	require.NotNil(t, got.Longitude)
	// Coordinates normalize to 6 decimal places.
	assert.Equal(t, -6.208763, *got.Latitude)
	assert.Equal(t, 106.845599, *got.Longitude)
}

func TestResolveSymbolicPresetClearsCoordinates(t *testing.T) {
	r := testResolver()
	prior := Resolved{
		Name:      "Kantor Pusat",
		Address:   "old office address",
		Latitude:  f64(-6.208763),
		Longitude: f64(106.845599),
	}

	got, err := r.Resolve(prior, Choice{PresetKey: "Remote", Address: "Jl. Melati 5, Malang"})
	require.NoError(t, err)

	assert.Equal(t, "Remote", got.Name)
	assert.Equal(t, "Jl. Melati 5, Malang", got.Address)
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)

	// Without a user-entered address, the prior one carries over.
	got, err = r.Resolve(prior, Choice{PresetKey: "Remote"})
	require.NoError(t, err)
	assert.Equal(t, "old office address", got.Address)
}

func TestResolveExplicitCoordinates(t *testing.T) {
	r := testResolver()

	// No prior name: the resolution is labeled "Custom".
	got, err := r.Resolve(Resolved{}, Choice{Latitude: f64(-7.9522014567), Longitude: f64(112.6140569876)})
	require.NoError(t, err)
	assert.Equal(t, CustomName, got.Name)
	assert.Equal(t, -7.952201, *got.Latitude)
	assert.Equal(t, 112.614057, *got.Longitude)

	// A prior name survives a map reposition.
	prior := Resolved{Name: "Remote", Address: "Jl. Melati 5"}
	got, err = r.Resolve(prior, Choice{Latitude: f64(-7.95), Longitude: f64(112.61)})
	require.NoError(t, err)
	assert.Equal(t, "Remote", got.Name)
	assert.Equal(t, "Jl. Melati 5", got.Address)
}

func TestResolveUnavailableKeepsPrior(t *testing.T) {
	r := testResolver()
	prior := Resolved{Name: "Kantor Pusat", Latitude: f64(-6.208763), Longitude: f64(106.845599)}

	got, err := r.Resolve(prior, Choice{Unavailable: true})
	assert.ErrorIs(t, err, ErrLocationUnavailable)
	assert.Equal(t, prior, got)
}

func TestResolveUnknownPreset(t *testing.T) {
	r := testResolver()
	prior := Resolved{Name: "Remote"}

	got, err := r.Resolve(prior, Choice{PresetKey: "Mars Office"})
	assert.ErrorIs(t, err, ErrPresetNotFound)
	assert.Equal(t, prior, got)
}

func TestResolveEmptyChoiceIsNoop(t *testing.T) {
	r := testResolver()
	prior := Resolved{Name: "Kantor Pusat"}

	got, err := r.Resolve(prior, Choice{})
	require.NoError(t, err)
	assert.Equal(t, prior, got)
}

func TestNearestSkipsSymbolicPresets(t *testing.T) {
	r := testResolver()

	best, dist, found := r.Nearest(-6.21, 106.85)
	require.True(t, found)
	assert.Equal(t, "Kantor Pusat", best.Name)
	assert.Less(t, dist, 1000.0)

	none := NewResolver([]Preset{{Name: "Remote"}})
	_, _, found = none.Nearest(-6.21, 106.85)
	assert.False(t, found)
}
