package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/database"
)

// StatsHandler serves the catalog overview built from raw grouped-count
// queries.
type StatsHandler struct {
	DB *gorm.DB
}

// GetStats responds with row counts per resource plus the affinity and
// rarity breakdowns.
func (sh *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := sh.DB.DB()
	if err != nil {
		respondFault(w, err)
		return
	}

	stats, err := database.GetCatalogStats(sqlDB)
	if err != nil {
		respondFault(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": stats})
}
