package handlers

import (
	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/models"
	"github.com/arcanum-games/chardb-backend/repository"
)

// institutionPayload is the declarative schema for institution bodies.
type institutionPayload struct {
	Name    *string `json:"name" validate:"required"`
	Region  *string `json:"region" validate:"required"`
	Country *string `json:"country" validate:"required"`
}

// InstitutionHandler exposes the institution resource from the earlier
// schema iteration.
type InstitutionHandler struct {
	*Resource[models.Institution, institutionPayload]
}

// NewInstitutionHandler wires the institution resource to its repository.
func NewInstitutionHandler(repo *repository.InstitutionRepository, cfg config.Config) *InstitutionHandler {
	return &InstitutionHandler{Resource: &Resource[models.Institution, institutionPayload]{
		Name:   "Institution",
		Plural: "institutions",
		Repo:   repo,

		DefaultSortBy: "name",
		SortFields: []FieldMap{
			{"id", "id"},
			{"name", "name"},
			{"region", "region"},
			{"country", "country"},
		},
		FilterFields: []FieldMap{
			{"name", "name"},
			{"region", "region"},
			{"country", "country"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		ToModel: func(p *institutionPayload) *models.Institution {
			return &models.Institution{
				Name:    *p.Name,
				Region:  *p.Region,
				Country: *p.Country,
			}
		},
	}}
}
