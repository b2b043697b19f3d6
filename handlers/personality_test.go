package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePersonalityUniquePerCharacter(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/personalities", map[string]any{
		"personality": "Protagonist", "characterId": id,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/personalities", map[string]any{
		"personality": "Protagonist", "characterId": id,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t,
		fmt.Sprintf("Personality with the value Protagonist already exists for the character with the id %d", id),
		decodeEnvelope(t, rec)["msg"])
}

func TestCreatePersonalityInvalidValue(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/personalities", map[string]any{
		"personality": "Grumpy", "characterId": id,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	msg := decodeEnvelope(t, rec)["msg"].(string)
	assert.True(t, strings.HasPrefix(msg, "Invalid personality. Allowed values are Beast, Blacksmith,"), msg)
	assert.True(t, strings.HasSuffix(msg, "Bow, Fists, Hammer"), msg)
}

func TestListPersonalitiesSortedByValue(t *testing.T) {
	router := setupTestRouter(t)
	id := createCharacter(t, router, "Hismena", "Light")

	for _, p := range []string{"Protagonist", "Bookworm", "Glutton"} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/personalities", map[string]any{
			"personality": p, "characterId": id,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, listPath("personalities", ""), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeEnvelope(t, rec)["data"].([]any)
	require.Len(t, rows, 3)

	// default sort is the personality value, ascending
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = row.(map[string]any)["personality"].(string)
	}
	assert.Equal(t, []string{"Bookworm", "Glutton", "Protagonist"}, values)
}
