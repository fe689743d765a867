package catalog

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// Snapshot object names, relative to a source root.
const (
	SetsObject       = "sets.json"
	CardsObject      = "cards.json"
	MigrationsObject = "migrations.json"
)

// DateLayout is the provider's date format for set release dates.
const DateLayout = "2006-01-02"

type rawSet struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ReleasedAt string `json:"released_at"`
	SetType    string `json:"set_type"`
	Digital    bool   `json:"digital"`
}

// DecodeSets decodes a JSON array of set records.
func DecodeSets(r io.Reader) ([]Set, error) {
	var raw []rawSet
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode sets: %w", err)
	}

	sets := make([]Set, 0, len(raw))
	for _, rs := range raw {
		s := Set{
			Code:    rs.Code,
			Name:    rs.Name,
			SetType: rs.SetType,
			Digital: rs.Digital,
		}
		if rs.ReleasedAt != "" {
			t, err := time.Parse(DateLayout, rs.ReleasedAt)
			if err != nil {
				return nil, fmt.Errorf("set %s: invalid released_at %q: %w", rs.Code, rs.ReleasedAt, err)
			}
			s.ReleasedAt = t
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// DecodeCards decodes a JSON array of card records.
func DecodeCards(r io.Reader) ([]Card, error) {
	var cards []Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}

// DecodeMigrations decodes a JSON array of migration records.
func DecodeMigrations(r io.Reader) ([]Migration, error) {
	var migrations []Migration
	if err := json.NewDecoder(r).Decode(&migrations); err != nil {
		return nil, fmt.Errorf("failed to decode migrations: %w", err)
	}
	return migrations, nil
}
