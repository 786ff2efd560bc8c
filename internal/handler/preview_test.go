package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainttx/itemforge/internal/forge"
	"github.com/sainttx/itemforge/internal/registry"
)

func previewHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	reg, err := registry.New(&registry.Config{
		Materials: []registry.MaterialDef{
			{InternalName: "diamond_sword", MaxStack: 1, MaxDurability: 1561},
			{InternalName: "stone", MaxStack: 64},
		},
		Enchantments: []registry.EnchantmentDef{
			{InternalName: "sharpness", StartLevel: 1, MaxLevel: 5},
		},
	})
	require.NoError(t, err)
	return HandlePreviewStack(forge.NewService(reg))
}

func doPreview(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stack/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlePreviewStack(t *testing.T) {
	h := previewHandler(t)

	t.Run("builds and returns the stack", func(t *testing.T) {
		rec := doPreview(t, h, `{
			"material": "diamond_sword",
			"amount": 1,
			"display_name": "&cSlayer",
			"lore": ["&7A fine blade"],
			"enchantments": {"sharpness": 10},
			"flags": ["hide_enchants"]
		}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp PreviewStackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "diamond_sword", resp.Material)
		assert.Equal(t, 1, resp.Amount)
		assert.Equal(t, "§cSlayer", resp.DisplayName)
		assert.True(t, resp.CustomName)
		assert.Equal(t, []string{"§7A fine blade"}, resp.Lore)
		assert.Equal(t, map[string]int{"sharpness": 10}, resp.Enchantments)
	})

	t.Run("default display name when none set", func(t *testing.T) {
		rec := doPreview(t, h, `{"material": "stone"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp PreviewStackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Stone", resp.DisplayName)
		assert.False(t, resp.CustomName)
		assert.Equal(t, 1, resp.Amount, "omitted amount defaults to one")
	})

	t.Run("omitted lore serializes as null, empty lore as array", func(t *testing.T) {
		rec := doPreview(t, h, `{"material": "stone"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"lore":null`)

		rec = doPreview(t, h, `{"material": "stone", "lore": []}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"lore":[]`)
	})

	t.Run("unknown material is a bad request", func(t *testing.T) {
		rec := doPreview(t, h, `{"material": "bedrock"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown material")
	})

	t.Run("unknown flag is a bad request", func(t *testing.T) {
		rec := doPreview(t, h, `{"material": "stone", "flags": ["hide_everything"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing material fails validation", func(t *testing.T) {
		rec := doPreview(t, h, `{"amount": 1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "material")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		rec := doPreview(t, h, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
