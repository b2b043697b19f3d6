package handlers

import (
	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/models"
	"github.com/arcanum-games/chardb-backend/repository"
)

// departmentPayload is the declarative schema for department bodies.
type departmentPayload struct {
	Name          *string `json:"name" validate:"required"`
	InstitutionID *uint   `json:"institutionId" validate:"required"`
}

// DepartmentHandler exposes the department resource.
type DepartmentHandler struct {
	*Resource[models.Department, departmentPayload]
}

// NewDepartmentHandler wires the department resource to its repository.
func NewDepartmentHandler(repo *repository.DepartmentRepository, cfg config.Config) *DepartmentHandler {
	return &DepartmentHandler{Resource: &Resource[models.Department, departmentPayload]{
		Name:   "Department",
		Plural: "departments",
		Repo:   repo,

		DefaultSortBy: "name",
		SortFields: []FieldMap{
			{"id", "id"},
			{"name", "name"},
			{"institutionId", "institution_id"},
		},
		FilterFields: []FieldMap{
			{"name", "name"},
			{"institutionId", "institution_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		ToModel: func(p *departmentPayload) *models.Department {
			return &models.Department{
				Name:          *p.Name,
				InstitutionID: *p.InstitutionID,
			}
		},
	}}
}
