package handlers

import (
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/repository"
)

// NewRouter composes every resource route under the versioned base path.
func NewRouter(db *gorm.DB, cfg config.Config) chi.Router {
	characterHandler := NewCharacterHandler(repository.NewCharacterRepository(db), cfg)
	attributeHandler := NewAttributeHandler(repository.NewAttributeRepository(db), cfg)
	rarityHandler := NewRarityHandler(repository.NewRarityRepository(db), cfg)
	affinityBonusHandler := NewAffinityBonusHandler(repository.NewAffinityBonusRepository(db), cfg)
	elementHandler := NewElementHandler(repository.NewElementRepository(db), cfg)
	personalityHandler := NewPersonalityHandler(repository.NewPersonalityRepository(db), cfg)
	institutionHandler := NewInstitutionHandler(repository.NewInstitutionRepository(db), cfg)
	departmentHandler := NewDepartmentHandler(repository.NewDepartmentRepository(db), cfg)
	courseHandler := NewCourseHandler(repository.NewCourseRepository(db), cfg)
	statsHandler := &StatsHandler{DB: db}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/characters", characterHandler.Routes)
		r.Route("/attributes", attributeHandler.Routes)
		r.Route("/rarities", rarityHandler.Routes)
		r.Route("/affinities", affinityBonusHandler.Routes)
		r.Route("/elements", elementHandler.Routes)
		r.Route("/personalities", personalityHandler.Routes)
		r.Route("/institutions", institutionHandler.Routes)
		r.Route("/departments", departmentHandler.Routes)
		r.Route("/courses", courseHandler.Routes)
		r.Get("/stats", statsHandler.GetStats)
	})
	return r
}
