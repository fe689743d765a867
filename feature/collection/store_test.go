package collection

import (
	"context"
	"testing"
	"time"

	"collection-manager/core/counts"
	"collection-manager/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := counts.Of(map[string]counts.Counts{
		"a": {Nonfoil: 2},
		"b": {Foil: 1},
	})
	require.NoError(t, store.Save(ctx, "main", first))

	got, err := store.Load(ctx, "main")
	require.NoError(t, err)
	assert.True(t, got.Equal(first))

	t.Run("SaveReplaces", func(t *testing.T) {
		second := counts.Of(map[string]counts.Counts{"c": {Nonfoil: 1, Foil: 1}})
		require.NoError(t, store.Save(ctx, "main", second))

		got, err := store.Load(ctx, "main")
		require.NoError(t, err)
		assert.True(t, got.Equal(second))
	})

	t.Run("CollectionsAreSeparate", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "trade", first))

		names, err := store.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"main", "trade"}, names)

		got, err := store.Load(ctx, "trade")
		require.NoError(t, err)
		assert.True(t, got.Equal(first))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})

	t.Run("EmptySaveRemoves", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "trade", counts.Map{}))
		_, err := store.Load(ctx, "trade")
		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})
}

func TestStore_MigrateUpgradesExistingTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE collection_entries (collection TEXT, scryfall_id TEXT, nonfoil INTEGER)").Error)

	// AutoMigrate adds the missing column, so the check passes
	require.NoError(t, NewStore(db).Migrate())

	missing, err := database.MissingColumns(db, "collection_entries", entryColumns)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := database.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), time.Second)
	require.NoError(t, err)
	store := NewStore(db)

	t.Run("SaveRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `collection_entries`").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := store.Save(ctx, "main", counts.Of(map[string]counts.Counts{"a": {Nonfoil: 1}}))
		assert.ErrorContains(t, err, "failed to clear collection main")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `collection_entries`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO `collection_entries`").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := store.Save(ctx, "main", counts.Of(map[string]counts.Counts{"a": {Nonfoil: 1}}))
		assert.ErrorContains(t, err, "failed to save collection main")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("LoadFails", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `collection_entries`").WillReturnError(assert.AnError)

		_, err := store.Load(ctx, "main")
		assert.ErrorContains(t, err, "failed to load collection main")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
