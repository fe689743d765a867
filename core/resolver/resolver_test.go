package resolver_test

import (
	"errors"
	"testing"

	"collection-manager/core/catalog/catalogtest"
	"collection-manager/core/index"
	"collection-manager/core/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() *resolver.Resolver {
	return resolver.New(index.Build(catalogtest.Catalog()), resolver.DefaultTables())
}

func TestFind(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name string
		row  resolver.Row
		want string
	}{
		{
			name: "set name number",
			row:  resolver.Row{SetCode: "FEM", Name: "Thallid", Number: "74a"},
			want: catalogtest.Thallid74a,
		},
		{
			name: "set name multiverse id",
			row:  resolver.Row{SetCode: "fem", Name: "Thallid", MultiverseID: 1923},
			want: catalogtest.Thallid74c,
		},
		{
			name: "set name artist",
			row:  resolver.Row{SetCode: "fem", Name: "Thallid", Artist: "Jesper Myrfors", MultiverseID: resolver.NoMultiverseID},
			want: catalogtest.Thallid74b,
		},
		{
			name: "number beats multiverse id",
			row:  resolver.Row{SetCode: "fem", Name: "Thallid", Number: "74d", MultiverseID: 1921},
			want: catalogtest.Thallid74d,
		},
		{
			name: "set name only",
			row:  resolver.Row{SetCode: "LEA", Name: "Lightning Bolt"},
			want: catalogtest.LightningBolt,
		},
		{
			name: "name and artist without set",
			row:  resolver.Row{Name: "Shivan Dragon", Artist: "Melissa A. Benson"},
			want: catalogtest.ShivanDragon,
		},
		{
			name: "unknown set falls back to name and artist",
			row:  resolver.Row{SetCode: "XYZ", Name: "Shivan Dragon"},
			want: catalogtest.ShivanDragon,
		},
		{
			name: "wrong number falls through to name",
			row:  resolver.Row{SetCode: "lea", Name: "Lightning Bolt", Number: "999"},
			want: catalogtest.LightningBolt,
		},
		{
			name: "alternate set code",
			row:  resolver.Row{SetCode: "MBP", Name: "Sewers of Estark"},
			want: catalogtest.SewersPMEI,
		},
		{
			name: "artist substitution",
			row:  resolver.Row{SetCode: "hml", Name: "Ambush Party", Artist: "Brian Snoddy"},
			want: catalogtest.AmbushParty1,
		},
		{
			name: "name substitution",
			row:  resolver.Row{SetCode: "hml", Name: "Aether Storm"},
			want: catalogtest.AetherStorm,
		},
		{
			name: "back face with letter",
			row:  resolver.Row{SetCode: "isd", Name: "Insectile Aberration", Number: "51b"},
			want: catalogtest.Delver,
		},
		{
			name: "digital printing is never chosen",
			row:  resolver.Row{SetCode: "ha1", Name: "Llanowar Elves", Number: "16"},
			want: catalogtest.LlanowarLEA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Find(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind_Ambiguous(t *testing.T) {
	r := newResolver()

	_, err := r.Find(resolver.Row{SetCode: "FEM", Name: "Thallid"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.ErrMultipleMatch))

	var multi *resolver.MultipleMatchError
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, []string{
		catalogtest.Thallid74a,
		catalogtest.Thallid74b,
		catalogtest.Thallid74c,
		catalogtest.Thallid74d,
	}, multi.Candidates)
}

func TestFind_AmbiguityIsNotResolvedByLooserKeys(t *testing.T) {
	r := newResolver()

	// the artist matches nothing, so the ambiguous (hml, Ambush Party) key decides
	_, err := r.Find(resolver.Row{SetCode: "hml", Name: "Ambush Party", Artist: "Nobody"})
	assert.ErrorIs(t, err, resolver.ErrMultipleMatch)
}

func TestFind_NoMatch(t *testing.T) {
	r := newResolver()

	_, err := r.Find(resolver.Row{SetCode: "lea", Name: "Black Lotus"})
	require.Error(t, err)
	assert.ErrorIs(t, err, resolver.ErrNoMatch)

	var none *resolver.NoMatchError
	require.ErrorAs(t, err, &none)
	assert.Equal(t, "Black Lotus", none.Row.Name)
}

func TestFind_BasicLandsAreFungible(t *testing.T) {
	r := newResolver()
	row := resolver.Row{SetCode: "LEA", Name: "Forest"}

	for i := 0; i < 5; i++ {
		got, err := r.Find(row)
		require.NoError(t, err)
		assert.Equal(t, catalogtest.ForestLEA294, got)
	}
}

func TestFind_CustomTables(t *testing.T) {
	idx := index.Build(catalogtest.Catalog())
	r := resolver.New(idx, resolver.Tables{})

	_, err := r.Find(resolver.Row{SetCode: "hml", Name: "Aether Storm"})
	assert.ErrorIs(t, err, resolver.ErrNoMatch)

	r = resolver.New(idx, resolver.Tables{AlternateSetCodes: map[string][]string{"homelands": {"hml"}}})
	got, err := r.Find(resolver.Row{SetCode: "Homelands", Name: "Ambush Party", Number: "63b"})
	require.NoError(t, err)
	assert.Equal(t, catalogtest.AmbushParty2, got)
}
