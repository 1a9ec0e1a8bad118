package atlas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatlas/internal/atlas"
)

func TestDefaultView(t *testing.T) {
	v := atlas.DefaultView()
	assert.Equal(t, atlas.DefaultProjectionID, v.ProjectionID)
	assert.Equal(t, atlas.CenterOrigin, v.Center)
	assert.Equal(t, atlas.ViewWorld, v.Mode)
	assert.False(t, v.Graticule)

	_, err := atlas.Find(v.ProjectionID)
	require.NoError(t, err)
}

func TestSelectProjection(t *testing.T) {
	v := atlas.DefaultView()

	changed, err := v.SelectProjection("mercator")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "mercator", v.ProjectionID)

	// Re-selecting the active projection needs no rebuild.
	changed, err = v.SelectProjection("mercator")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSelectProjectionUnknownKeepsState(t *testing.T) {
	v := atlas.DefaultView()
	v.Center = atlas.CenterMeridian

	changed, err := v.SelectProjection("mercator-deluxe")
	assert.ErrorIs(t, err, atlas.ErrUnknownProjection)
	assert.False(t, changed)
	assert.Equal(t, atlas.DefaultProjectionID, v.ProjectionID)
	assert.Equal(t, atlas.CenterMeridian, v.Center)
}

func TestHomeViewForcesHomeCenter(t *testing.T) {
	// The invariant holds no matter which center mode was active before.
	for _, start := range []atlas.CenterMode{atlas.CenterOrigin, atlas.CenterHome, atlas.CenterMeridian} {
		v := atlas.DefaultView()
		v.Center = start

		changed := v.SetMode(atlas.ViewHome)
		assert.True(t, changed)
		assert.Equal(t, atlas.ViewHome, v.Mode)
		assert.Equal(t, atlas.CenterHome, v.Center, "start=%v", start)
	}
}

func TestCenterLockedInHomeView(t *testing.T) {
	v := atlas.DefaultView()
	v.SetMode(atlas.ViewHome)

	assert.False(t, v.SetCenterMode(atlas.CenterOrigin))
	assert.False(t, v.SetCenterMode(atlas.CenterMeridian))
	assert.Equal(t, atlas.CenterHome, v.Center)

	// The home preset itself is permitted but already set.
	assert.False(t, v.SetCenterMode(atlas.CenterHome))
}

func TestLeavingHomeViewKeepsCenter(t *testing.T) {
	v := atlas.DefaultView()
	v.SetMode(atlas.ViewHome)

	changed := v.SetMode(atlas.ViewWorld)
	assert.True(t, changed)
	assert.Equal(t, atlas.ViewWorld, v.Mode)
	// Not reset to origin.
	assert.Equal(t, atlas.CenterHome, v.Center)
}

func TestSetModeSameIsNoop(t *testing.T) {
	v := atlas.DefaultView()
	assert.False(t, v.SetMode(atlas.ViewWorld))
	assert.True(t, v.ToggleMode())
	assert.True(t, v.ToggleMode())
	assert.Equal(t, atlas.ViewWorld, v.Mode)
}

func TestCycleCenterMode(t *testing.T) {
	v := atlas.DefaultView()

	assert.True(t, v.CycleCenterMode())
	assert.Equal(t, atlas.CenterHome, v.Center)
	assert.True(t, v.CycleCenterMode())
	assert.Equal(t, atlas.CenterMeridian, v.Center)
	assert.True(t, v.CycleCenterMode())
	assert.Equal(t, atlas.CenterOrigin, v.Center)

	// Locked while the close-up is active.
	v.SetMode(atlas.ViewHome)
	assert.False(t, v.CycleCenterMode())
	assert.Equal(t, atlas.CenterHome, v.Center)
}

func TestToggleGraticule(t *testing.T) {
	v := atlas.DefaultView()
	assert.True(t, v.ToggleGraticule())
	assert.True(t, v.Graticule)
	assert.True(t, v.ToggleGraticule())
	assert.False(t, v.Graticule)
}
