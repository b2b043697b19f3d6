package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCharacterRoundTrip(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/characters", map[string]any{
		"name":        "Hismena",
		"description": "A dancer from the mining town of Acteul.",
		"affinity":    "Light",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Character successfully created", envelope["msg"])
	created := envelope["data"].(map[string]any)
	id := int(created["id"].(float64))

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/characters/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	fetched := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Hismena", fetched["name"])
	assert.Equal(t, "A dancer from the mining town of Acteul.", fetched["description"])
	assert.Equal(t, "Light", fetched["affinity"])
}

func TestCreateCharacterDuplicateNameIgnoresCase(t *testing.T) {
	router := setupTestRouter(t)
	createCharacter(t, router, "Hismena", "Light")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/characters", map[string]any{
		"name":        "hismena",
		"description": "same character, different case",
		"affinity":    "Light",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t,
		"Character with the name hismena already exists in the database",
		decodeEnvelope(t, rec)["msg"])
}

func TestGetCharacterNotFoundIsOK(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/characters/9999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No Character with the id: 9999 found", decodeEnvelope(t, rec)["msg"])
}

func TestCreateCharacterInvalidAffinity(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/characters", map[string]any{
		"name":        "Aldo",
		"description": "a kidnapped cat",
		"affinity":    "not valid",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid affinity. Allowed values are Light, Shadow", decodeEnvelope(t, rec)["msg"])
}

func TestCreateCharacterMissingField(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/characters", map[string]any{
		"description": "no name given",
		"affinity":    "Light",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"name" is required`, decodeEnvelope(t, rec)["msg"])
}

func TestUpdateCharacterIsFullReplace(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	// a partial payload is a validation failure, not a patch
	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/characters/%d", id), map[string]any{
		"name": "Hismena AS",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"description" is required`, decodeEnvelope(t, rec)["msg"])

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/characters/%d", id), map[string]any{
		"name":        "Hismena AS",
		"description": "another style",
		"affinity":    "Shadow",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, fmt.Sprintf("Character with the id: %d successfully updated", id), envelope["msg"])
	updated := envelope["data"].(map[string]any)
	assert.Equal(t, "Hismena AS", updated["name"])
	assert.Equal(t, "Shadow", updated["affinity"])
}

func TestUpdateCharacterNotFoundIsOK(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/characters/4242", map[string]any{
		"name":        "Nobody",
		"description": "missing row",
		"affinity":    "Light",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No Character with the id: 4242 found", decodeEnvelope(t, rec)["msg"])
}

func TestDeleteCharacter(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/characters/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, fmt.Sprintf("Character with the id: %d successfully deleted", id), envelope["msg"])
	snapshot := envelope["data"].(map[string]any)
	assert.Equal(t, "Hismena", snapshot["name"])

	// deleting again is still a 200, not an error
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/characters/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fmt.Sprintf("No Character with the id: %d found", id), decodeEnvelope(t, rec)["msg"])
}

func TestDeleteCharacterCascadesChildRows(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/elements", map[string]any{
		"element":     "Water",
		"characterId": id,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	elementID := int(decodeEnvelope(t, rec)["data"].(map[string]any)["id"].(float64))

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/characters/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/elements/%d", elementID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		fmt.Sprintf("No Element with the id: %d found", elementID),
		decodeEnvelope(t, rec)["msg"])
}

func TestListCharactersEmpty(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/characters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No characters found", decodeEnvelope(t, rec)["msg"])
}

func TestListCharactersPagination(t *testing.T) {
	router := setupTestRouter(t)
	for i := 1; i <= 25; i++ {
		createCharacter(t, router, fmt.Sprintf("Char %02d", i), "Light")
	}

	rec := doJSON(t, router, http.MethodGet, listPath("characters", "amount=10&page=1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"], 10)
	assert.Equal(t, float64(2), envelope["nextPage"])

	rec = doJSON(t, router, http.MethodGet, listPath("characters", "amount=10&page=3"), nil)
	envelope = decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"], 5)
	assert.Nil(t, envelope["nextPage"])
}

func TestListCharactersNextPageExactMultiple(t *testing.T) {
	router := setupTestRouter(t)
	for i := 1; i <= 20; i++ {
		createCharacter(t, router, fmt.Sprintf("Char %02d", i), "Light")
	}

	// the last page holds exactly `amount` rows; nextPage must still be null
	rec := doJSON(t, router, http.MethodGet, listPath("characters", "amount=10&page=2"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Len(t, envelope["data"], 10)
	assert.Nil(t, envelope["nextPage"])
}

func TestListCharactersSortOrderReversed(t *testing.T) {
	router := setupTestRouter(t)
	for _, name := range []string{"Ciel", "Aldo", "Bivette"} {
		createCharacter(t, router, name, "Light")
	}

	names := func(query string) []string {
		rec := doJSON(t, router, http.MethodGet, listPath("characters", query), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeEnvelope(t, rec)["data"].([]any)
		out := make([]string, len(rows))
		for i, row := range rows {
			out[i] = row.(map[string]any)["name"].(string)
		}
		return out
	}

	asc := names("sortBy=name&sortOrder=asc")
	desc := names("sortBy=name&sortOrder=desc")
	assert.Equal(t, []string{"Aldo", "Bivette", "Ciel"}, asc)
	assert.Equal(t, []string{"Ciel", "Bivette", "Aldo"}, desc)
}

func TestListCharactersFilterByAffinity(t *testing.T) {
	router := setupTestRouter(t)
	createCharacter(t, router, "Aldo", "Light")
	createCharacter(t, router, "Feinne", "Light")
	createCharacter(t, router, "Guildna", "Shadow")

	rec := doJSON(t, router, http.MethodGet, listPath("characters", "affinity=Shadow"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeEnvelope(t, rec)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Guildna", rows[0].(map[string]any)["name"])

	// absent filter params must not restrict results
	rec = doJSON(t, router, http.MethodGet, listPath("characters", ""), nil)
	assert.Len(t, decodeEnvelope(t, rec)["data"], 3)
}

func TestListCharactersInvalidSortBy(t *testing.T) {
	router := setupTestRouter(t)
	createCharacter(t, router, "Aldo", "Light")

	rec := doJSON(t, router, http.MethodGet, listPath("characters", "sortBy=hp"), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid sortBy. Allowed values are id, name, affinity", decodeEnvelope(t, rec)["msg"])
}

func TestGetCharacterIncludesRelations(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/rarities", map[string]any{
		"rarity":      5,
		"className":   "Diviner",
		"characterId": id,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/characters/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	rarities := data["rarities"].([]any)
	require.Len(t, rarities, 1)
	assert.Equal(t, "Diviner", rarities[0].(map[string]any)["className"])
}
