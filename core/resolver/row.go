package resolver

import (
	"fmt"

	"collection-manager/core/utils"

	"github.com/google/uuid"
)

// Record field names understood by RowFromRecord.
const (
	FieldSet          = "set"
	FieldName         = "name"
	FieldNumber       = "number"
	FieldScryfallID   = "scryfall_id"
	FieldMultiverseID = "multiverseid"
	FieldArtist       = "artist"
	FieldNonfoil      = "nonfoil"
	FieldFoil         = "foil"
)

// NoMultiverseID marks a row without a usable multiverse id.
const NoMultiverseID = -1

// Row is one typed input record. Every field but the counts is optional.
type Row struct {
	SetCode      string `json:"set,omitempty"`
	Name         string `json:"name,omitempty"`
	Number       string `json:"number,omitempty"`
	ScryfallID   string `json:"scryfall_id,omitempty"`
	MultiverseID int    `json:"multiverseid,omitempty"`
	Artist       string `json:"artist,omitempty"`
	Nonfoil      int    `json:"nonfoil,omitempty"`
	Foil         int    `json:"foil,omitempty"`
}

// RowFromRecord coerces a string-keyed record from any row supplier into a Row.
// Missing or unparseable multiverse ids become NoMultiverseID; counts must be whole
// numbers or blank, and a present identifier must be a UUID.
func RowFromRecord(rec map[string]any) (Row, error) {
	row := Row{
		SetCode:      utils.ToString(rec[FieldSet]),
		Name:         utils.ToString(rec[FieldName]),
		Number:       utils.ToString(rec[FieldNumber]),
		ScryfallID:   utils.ToString(rec[FieldScryfallID]),
		Artist:       utils.ToString(rec[FieldArtist]),
		MultiverseID: utils.ToInt(rec[FieldMultiverseID]),
	}
	if row.MultiverseID <= 0 {
		row.MultiverseID = NoMultiverseID
	}

	if row.ScryfallID != "" {
		id, err := uuid.Parse(row.ScryfallID)
		if err != nil {
			return Row{}, fmt.Errorf("invalid %s %q: %w", FieldScryfallID, row.ScryfallID, err)
		}
		row.ScryfallID = id.String()
	}

	var err error
	if row.Nonfoil, err = utils.ToCount(rec[FieldNonfoil]); err != nil {
		return Row{}, fmt.Errorf("invalid %s: %w", FieldNonfoil, err)
	}
	if row.Foil, err = utils.ToCount(rec[FieldFoil]); err != nil {
		return Row{}, fmt.Errorf("invalid %s: %w", FieldFoil, err)
	}

	return row, nil
}

// String describes the identifying fields of a row for logs and errors.
func (r Row) String() string {
	if r.ScryfallID != "" {
		return r.ScryfallID
	}
	return fmt.Sprintf("set=%q name=%q number=%q", r.SetCode, r.Name, r.Number)
}
