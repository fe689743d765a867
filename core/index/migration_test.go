package index_test

import (
	"errors"
	"testing"

	"collection-manager/core/catalog"
	"collection-manager/core/catalog/catalogtest"
	"collection-manager/core/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	idx := index.Build(catalogtest.Catalog())

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"current id", catalogtest.LightningBolt, catalogtest.LightningBolt},
		{"single hop", catalogtest.OldBolt, catalogtest.LightningBolt},
		{"two hops", catalogtest.OldShivanHead, catalogtest.ShivanDragon},
		{"delete strategy ignored", catalogtest.Deleted, catalogtest.Deleted},
		{"broken link", catalogtest.BrokenLink, catalogtest.Nowhere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Resolve(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Cycle(t *testing.T) {
	idx := index.Build(catalogtest.Catalog())

	_, err := idx.Resolve(catalogtest.CycleA)
	require.Error(t, err)
	assert.True(t, errors.Is(err, index.ErrMigrationCycle))

	var cycleErr *index.MigrationCycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{catalogtest.CycleA, catalogtest.CycleB, catalogtest.CycleA}, cycleErr.Chain)
}

func TestResolve_SelfLoop(t *testing.T) {
	b := index.NewBuilder()
	b.AddMigration(catalog.Migration{OldID: "a", NewID: "a", Strategy: catalog.MigrationStrategyMerge})

	_, err := b.Build().Resolve("a")
	assert.ErrorIs(t, err, index.ErrMigrationCycle)
}

func TestAddMigration_LastWins(t *testing.T) {
	b := index.NewBuilder()
	b.AddMigration(catalog.Migration{OldID: "old", NewID: "first", Strategy: catalog.MigrationStrategyMerge})
	b.AddMigration(catalog.Migration{OldID: "old", NewID: "second", Strategy: catalog.MigrationStrategyMerge})
	b.AddMigration(catalog.Migration{OldID: "old", Strategy: catalog.MigrationStrategyMerge})

	got, err := b.Build().Resolve("old")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
