package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setsJSON = `[
  {"code": "fem", "name": "Fallen Empires", "released_at": "1994-11-01", "set_type": "expansion", "digital": false},
  {"code": "ha1", "name": "Historic Anthology 1", "released_at": "", "set_type": "masters", "digital": true}
]`

const cardsJSON = `[
  {"id": "de1fe400-0000-4000-8000-000000000051", "set": "isd", "name": "Delver of Secrets // Insectile Aberration",
   "collector_number": "51", "multiverse_ids": [226749, 226755], "artist": "Nils Hamm", "digital": false,
   "card_faces": [{"name": "Delver of Secrets"}, {"name": "Insectile Aberration"}], "lang": "en"}
]`

const migrationsJSON = `[
  {"old_scryfall_id": "a", "new_scryfall_id": "b", "migration_strategy": "merge"},
  {"old_scryfall_id": "c", "new_scryfall_id": null, "migration_strategy": "delete"}
]`

func TestDecodeSets(t *testing.T) {
	sets, err := DecodeSets(strings.NewReader(setsJSON))
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "fem", sets[0].Code)
	assert.Equal(t, time.Date(1994, 11, 1, 0, 0, 0, 0, time.UTC), sets[0].ReleasedAt)
	assert.True(t, sets[1].ReleasedAt.IsZero())
	assert.True(t, sets[1].Digital)
}

func TestDecodeSets_InvalidDate(t *testing.T) {
	_, err := DecodeSets(strings.NewReader(`[{"code": "x", "released_at": "soon"}]`))
	assert.ErrorContains(t, err, "invalid released_at")
}

func TestDecodeCards(t *testing.T) {
	cards, err := DecodeCards(strings.NewReader(cardsJSON))
	require.NoError(t, err)
	require.Len(t, cards, 1)

	c := cards[0]
	assert.Equal(t, "isd", c.Set)
	assert.Equal(t, []int{226749, 226755}, c.MultiverseIDs)
	assert.Equal(t, []Face{{Name: "Delver of Secrets"}, {Name: "Insectile Aberration"}}, c.Faces)
	assert.Equal(t, SortKey{Number: 51, HasNumber: true}, c.SortKey())
}

func TestDecodeMigrations(t *testing.T) {
	migrations, err := DecodeMigrations(strings.NewReader(migrationsJSON))
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.True(t, migrations[0].Merges())
	assert.False(t, migrations[1].Merges())
	assert.Equal(t, "", migrations[1].NewID)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := DecodeCards(strings.NewReader(`{"not": "an array"}`))
	assert.ErrorContains(t, err, "failed to decode cards")
}
