package collection_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"collection-manager/core/catalog/catalogtest"
	"collection-manager/core/counts"
	"collection-manager/core/database"
	"collection-manager/core/index"
	"collection-manager/core/resolver"
	"collection-manager/core/server"
	"collection-manager/feature/collection"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, withStore bool) *fiber.App {
	t.Helper()

	var store *collection.Store
	if withStore {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		store = collection.NewStore(db)
		require.NoError(t, store.Migrate())
	}

	idx := index.Build(catalogtest.Catalog())
	svc := collection.NewService(index.Static(idx), resolver.DefaultTables(), store, zap.NewNop(), collection.Config{})
	feature := collection.NewFeature(svc)

	assert.Equal(t, "collection", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := server.NewApp(server.Config{})
	require.NoError(t, feature.Load(app))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return resp.StatusCode, out
}

func TestHandleAggregate(t *testing.T) {
	app := newApp(t, false)
	bolt := catalogtest.LightningBolt

	t.Run("Sums", func(t *testing.T) {
		body := `{"rows": [
			{"scryfall_id": "` + bolt + `", "foil": 1},
			{"scryfall_id": "` + bolt + `", "nonfoil": 1},
			{"set": "LEA", "name": "Lightning Bolt", "foil": "1"},
			{"set": "lea", "name": "Black Lotus", "nonfoil": 1}
		]}`
		status, out := do(t, app, "POST", "/collection/aggregate", body)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, map[string]any{bolt: map[string]any{"nonfoil": float64(1), "foil": float64(2)}}, out["counts"])
		assert.Equal(t, float64(1), out["cards"])
		assert.Equal(t, float64(3), out["copies"])
	})

	t.Run("StrictAmbiguous", func(t *testing.T) {
		body := `{"strict": true, "rows": [{"set": "fem", "name": "Thallid", "nonfoil": 1}]}`
		status, out := do(t, app, "POST", "/collection/aggregate", body)
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Len(t, out["candidates"], 4)
	})

	t.Run("StrictNoMatch", func(t *testing.T) {
		body := `{"strict": true, "rows": [{"set": "lea", "name": "Black Lotus", "nonfoil": 1}]}`
		status, _ := do(t, app, "POST", "/collection/aggregate", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("UnknownCard", func(t *testing.T) {
		body := `{"rows": [{"scryfall_id": "` + catalogtest.Nowhere + `", "nonfoil": 1}]}`
		status, out := do(t, app, "POST", "/collection/aggregate", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, out["error"], catalogtest.Nowhere)
	})

	t.Run("InvalidRow", func(t *testing.T) {
		status, out := do(t, app, "POST", "/collection/aggregate", `{"rows": [{"scryfall_id": "nope", "foil": 1}]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, out["error"], "row 1")
	})

	t.Run("InvalidBody", func(t *testing.T) {
		status, _ := do(t, app, "POST", "/collection/aggregate", `{"rows":`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestHandleDiff(t *testing.T) {
	app := newApp(t, false)

	left, err := json.Marshal(counts.Of(map[string]counts.Counts{"a": {Nonfoil: 2}, "b": {Foil: 1}}))
	require.NoError(t, err)
	right, err := json.Marshal(counts.Of(map[string]counts.Counts{"a": {Nonfoil: 2}, "c": {Foil: 3}}))
	require.NoError(t, err)

	status, out := do(t, app, "POST", "/collection/diff", `{"left": `+string(left)+`, "right": `+string(right)+`}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]any{
		"b": map[string]any{"foil": float64(1)},
		"c": map[string]any{"foil": float64(-3)},
	}, out["diff"])
}

func TestHandleStored(t *testing.T) {
	t.Run("PutThenGet", func(t *testing.T) {
		app := newApp(t, true)
		body := `{"rows": [{"scryfall_id": "` + catalogtest.Delver + `", "foil": 2}]}`

		status, _ := do(t, app, "PUT", "/collections/main", body)
		assert.Equal(t, fiber.StatusOK, status)

		status, out := do(t, app, "GET", "/collections/main", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, map[string]any{catalogtest.Delver: map[string]any{"foil": float64(2)}}, out["counts"])

		status, _ = do(t, app, "GET", "/collections/other", "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("NoStore", func(t *testing.T) {
		app := newApp(t, false)
		status, _ := do(t, app, "GET", "/collections/main", "")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})
}
