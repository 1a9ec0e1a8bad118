package atlas_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatlas/internal/atlas"
	"goatlas/internal/proj"
)

func TestCatalogIDsUnique(t *testing.T) {
	all := atlas.All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for _, d := range all {
		assert.False(t, seen[d.ID], "duplicate id %q", d.ID)
		seen[d.ID] = true
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	families := map[atlas.Family]int{}
	for _, d := range atlas.All() {
		assert.NotEmpty(t, d.DisplayName, d.ID)
		assert.NotNil(t, d.New, d.ID)
		switch d.Family {
		case atlas.FamilyAzimuthal, atlas.FamilyConic, atlas.FamilyCylindrical,
			atlas.FamilyPseudo, atlas.FamilyInterrupted:
			families[d.Family]++
		default:
			t.Errorf("%s: unexpected family %q", d.ID, d.Family)
		}
	}
	// All five families are populated.
	assert.Len(t, families, 5)
}

func TestFindMatchesAll(t *testing.T) {
	for i, d := range atlas.All() {
		got, err := atlas.Find(d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID, "entry %d", i)
		assert.Equal(t, d.DisplayName, got.DisplayName)
	}

	_, err := atlas.Find("no-such-projection")
	assert.ErrorIs(t, err, atlas.ErrUnknownProjection)
}

func TestDefaultProjectionExists(t *testing.T) {
	d, err := atlas.Find(atlas.DefaultProjectionID)
	require.NoError(t, err)
	assert.Equal(t, atlas.DefaultProjectionID, d.ID)
}

func TestCatalogOrderStable(t *testing.T) {
	a := atlas.All()
	b := atlas.All()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

// Every raw must produce finite coordinates at benign sample points; a NaN
// here means a broken formula, not a clipped region.
func TestCatalogRawsProjectFinite(t *testing.T) {
	samples := [][2]float64{{10, 20}, {-30, -15}}
	for _, d := range atlas.All() {
		d := d
		t.Run(d.ID, func(t *testing.T) {
			p := proj.New(d.New())
			for _, s := range samples {
				x, y, ok := p.Project(s[0], s[1])
				require.True(t, ok, "sample %v", s)
				assert.False(t, math.IsNaN(x) || math.IsInf(x, 0), "x at %v", s)
				assert.False(t, math.IsNaN(y) || math.IsInf(y, 0), "y at %v", s)
			}
		})
	}
}
