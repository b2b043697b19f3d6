package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/database"
)

func setupTestRouter(t *testing.T) chi.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))

	cfg := config.Config{ListPageSize: 10, ListPageSizeMax: 100}
	return NewRouter(db, cfg)
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// createCharacter inserts a character through the API and returns its id.
func createCharacter(t *testing.T, router chi.Router, name, affinity string) int {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/characters", map[string]any{
		"name":        name,
		"description": "test character",
		"affinity":    affinity,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	envelope := decodeEnvelope(t, rec)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "create response should carry the created record")
	return int(data["id"].(float64))
}

func listPath(resource string, query string) string {
	if query == "" {
		return fmt.Sprintf("/api/v1/%s", resource)
	}
	return fmt.Sprintf("/api/v1/%s?%s", resource, query)
}
