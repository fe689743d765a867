// Package catalogtest provides a small, fixed catalog for tests.
package catalogtest

import (
	"time"

	"collection-manager/core/catalog"
)

// Printing identifiers of the fixture catalog.
const (
	Thallid74a = "0b1a1d4c-0000-4000-8000-00000000074a"
	Thallid74b = "0b1a1d4c-0000-4000-8000-00000000074b"
	Thallid74c = "0b1a1d4c-0000-4000-8000-00000000074c"
	Thallid74d = "0b1a1d4c-0000-4000-8000-00000000074d"

	ForestLEA294 = "f0de5700-0000-4000-8000-000000000294"
	ForestLEA295 = "f0de5700-0000-4000-8000-000000000295"
	ForestLEA296 = "f0de5700-0000-4000-8000-000000000296"

	LightningBolt = "b0b0b0b0-0000-4000-8000-000000000161"
	ShivanDragon  = "5a1a5a1a-0000-4000-8000-000000000174"
	LlanowarLEA   = "11a10000-0000-4000-8000-000000000210"
	LlanowarHA1   = "11a10000-0000-4000-8000-000000000016"

	AetherStorm  = "ae000000-0000-4000-8000-000000000024"
	AmbushParty1 = "a0b00000-0000-4000-8000-00000000063a"
	AmbushParty2 = "a0b00000-0000-4000-8000-00000000063b"

	Delver = "de1fe400-0000-4000-8000-000000000051"

	SewersPMEI = "5e3e0000-0000-4000-8000-000000000002"

	// Retired identifiers.
	OldBolt       = "01d00000-0000-4000-8000-000000000001"
	OldShivanHead = "01d00000-0000-4000-8000-000000000002"
	OldShivanMid  = "01d00000-0000-4000-8000-000000000003"
	CycleA        = "c0c00000-0000-4000-8000-00000000000a"
	CycleB        = "c0c00000-0000-4000-8000-00000000000b"
	Deleted       = "de1e7ed0-0000-4000-8000-000000000000"
	BrokenLink    = "b7e00000-0000-4000-8000-000000000000"
	Nowhere       = "00000000-0000-4000-8000-0000000000ff"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Catalog returns a fresh copy of the fixture catalog.
func Catalog() *catalog.Catalog {
	return &catalog.Catalog{
		Sets: []catalog.Set{
			{Code: "lea", Name: "Limited Edition Alpha", ReleasedAt: date("1993-08-05"), SetType: "core"},
			{Code: "fem", Name: "Fallen Empires", ReleasedAt: date("1994-11-01"), SetType: "expansion"},
			{Code: "hml", Name: "Homelands", ReleasedAt: date("1995-10-01"), SetType: "expansion"},
			{Code: "pmei", Name: "Media and Collaboration Promos", ReleasedAt: date("1995-07-01"), SetType: "promo"},
			{Code: "isd", Name: "Innistrad", ReleasedAt: date("2011-09-30"), SetType: "expansion"},
			{Code: "ha1", Name: "Historic Anthology 1", ReleasedAt: date("2019-11-21"), SetType: "masters", Digital: true},
		},
		Cards: []catalog.Card{
			{ID: Thallid74d, Set: "fem", Name: "Thallid", CollectorNumber: "74d", MultiverseIDs: []int{1924}, Artist: "Daniel Gelon"},
			{ID: Thallid74a, Set: "fem", Name: "Thallid", CollectorNumber: "74a", MultiverseIDs: []int{1921}, Artist: "Edward P. Beard, Jr."},
			{ID: Thallid74c, Set: "fem", Name: "Thallid", CollectorNumber: "74c", MultiverseIDs: []int{1923}, Artist: "Ron Spencer"},
			{ID: Thallid74b, Set: "fem", Name: "Thallid", CollectorNumber: "74b", MultiverseIDs: []int{1922}, Artist: "Jesper Myrfors"},

			{ID: ForestLEA296, Set: "lea", Name: "Forest", CollectorNumber: "296", MultiverseIDs: []int{289}, Artist: "Christopher Rush"},
			{ID: ForestLEA294, Set: "lea", Name: "Forest", CollectorNumber: "294", MultiverseIDs: []int{288}, Artist: "Christopher Rush"},
			{ID: ForestLEA295, Set: "lea", Name: "Forest", CollectorNumber: "295", MultiverseIDs: []int{290}, Artist: "Christopher Rush"},
			{ID: LightningBolt, Set: "lea", Name: "Lightning Bolt", CollectorNumber: "161", MultiverseIDs: []int{209}, Artist: "Christopher Rush"},
			{ID: ShivanDragon, Set: "lea", Name: "Shivan Dragon", CollectorNumber: "174", MultiverseIDs: []int{222}, Artist: "Melissa A. Benson"},
			{ID: LlanowarLEA, Set: "lea", Name: "Llanowar Elves", CollectorNumber: "210", MultiverseIDs: []int{230}, Artist: "Anson Maddocks"},

			{ID: AetherStorm, Set: "hml", Name: "Æther Storm", CollectorNumber: "24", MultiverseIDs: []int{2935}, Artist: "Mark Tedin"},
			{ID: AmbushParty1, Set: "hml", Name: "Ambush Party", CollectorNumber: "63a", MultiverseIDs: []int{2969}, Artist: "Brian Snõddy"},
			{ID: AmbushParty2, Set: "hml", Name: "Ambush Party", CollectorNumber: "63b", MultiverseIDs: []int{2970}, Artist: "Melissa A. Benson"},

			{ID: SewersPMEI, Set: "pmei", Name: "Sewers of Estark", CollectorNumber: "2", Artist: "Mark Tedin"},

			{
				ID:              Delver,
				Set:             "isd",
				Name:            "Delver of Secrets // Insectile Aberration",
				CollectorNumber: "51",
				Faces:           []catalog.Face{{Name: "Delver of Secrets"}, {Name: "Insectile Aberration"}},
				MultiverseIDs:   []int{226749, 226755},
				Artist:          "Nils Hamm",
			},

			{ID: LlanowarHA1, Set: "ha1", Name: "Llanowar Elves", CollectorNumber: "16", Artist: "Anson Maddocks", Digital: true},
		},
		Migrations: []catalog.Migration{
			{OldID: OldBolt, NewID: LightningBolt, Strategy: catalog.MigrationStrategyMerge},
			{OldID: OldShivanHead, NewID: OldShivanMid, Strategy: catalog.MigrationStrategyMerge},
			{OldID: OldShivanMid, NewID: ShivanDragon, Strategy: catalog.MigrationStrategyMerge},
			{OldID: CycleA, NewID: CycleB, Strategy: catalog.MigrationStrategyMerge},
			{OldID: CycleB, NewID: CycleA, Strategy: catalog.MigrationStrategyMerge},
			{OldID: Deleted, Strategy: "delete"},
			{OldID: BrokenLink, NewID: Nowhere, Strategy: catalog.MigrationStrategyMerge},
		},
	}
}
