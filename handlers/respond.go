package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/arcanum-games/chardb-backend/validation"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, verr *validation.Error) {
	writeJSON(w, verr.Status, map[string]any{"msg": verr.Msg})
}

// respondFault surfaces an unexpected repository fault as a 500. Nothing is
// allowed to propagate past the handler boundary.
func respondFault(w http.ResponseWriter, err error) {
	log.Printf("Unexpected fault: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{"msg": err.Error()})
}

// isUniqueViolation reports whether err is a sqlite unique-index violation,
// the authoritative 409 signal when two requests race past the friendly
// pre-check.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
