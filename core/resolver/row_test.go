package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFromRecord(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		row, err := RowFromRecord(map[string]any{
			"set":          "FEM",
			"name":         " Thallid ",
			"number":       "74a",
			"scryfall_id":  "0B1A1D4C-0000-4000-8000-00000000074A",
			"multiverseid": "1921",
			"artist":       "Edward P. Beard, Jr.",
			"nonfoil":      "2",
			"foil":         float64(1),
		})
		require.NoError(t, err)
		assert.Equal(t, Row{
			SetCode:      "FEM",
			Name:         "Thallid",
			Number:       "74a",
			ScryfallID:   "0b1a1d4c-0000-4000-8000-00000000074a",
			MultiverseID: 1921,
			Artist:       "Edward P. Beard, Jr.",
			Nonfoil:      2,
			Foil:         1,
		}, row)
	})

	t.Run("Sparse", func(t *testing.T) {
		row, err := RowFromRecord(map[string]any{"name": "Forest", "multiverseid": "n/a", "foil": ""})
		require.NoError(t, err)
		assert.Equal(t, NoMultiverseID, row.MultiverseID)
		assert.Zero(t, row.Foil)
		assert.Zero(t, row.Nonfoil)
	})

	t.Run("BadCount", func(t *testing.T) {
		_, err := RowFromRecord(map[string]any{"name": "Forest", "nonfoil": "lots"})
		assert.ErrorContains(t, err, "invalid nonfoil")
	})

	t.Run("BadIdentifier", func(t *testing.T) {
		_, err := RowFromRecord(map[string]any{"scryfall_id": "not-a-uuid"})
		assert.ErrorContains(t, err, "invalid scryfall_id")
	})
}

func TestRow_String(t *testing.T) {
	assert.Equal(t, "abc", Row{ScryfallID: "abc"}.String())
	assert.Equal(t, `set="fem" name="Thallid" number="74a"`, Row{SetCode: "fem", Name: "Thallid", Number: "74a"}.String())
}
