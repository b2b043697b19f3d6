package handlers

import (
	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/models"
	"github.com/arcanum-games/chardb-backend/repository"
)

// coursePayload is the declarative schema for course bodies.
type coursePayload struct {
	Name         *string `json:"name" validate:"required"`
	Code         *string `json:"code" validate:"required"`
	DepartmentID *uint   `json:"departmentId" validate:"required"`
}

// CourseHandler exposes the course resource.
type CourseHandler struct {
	*Resource[models.Course, coursePayload]
}

// NewCourseHandler wires the course resource to its repository.
func NewCourseHandler(repo *repository.CourseRepository, cfg config.Config) *CourseHandler {
	return &CourseHandler{Resource: &Resource[models.Course, coursePayload]{
		Name:   "Course",
		Plural: "courses",
		Repo:   repo,

		DefaultSortBy: "name",
		SortFields: []FieldMap{
			{"id", "id"},
			{"name", "name"},
			{"code", "code"},
			{"departmentId", "department_id"},
		},
		FilterFields: []FieldMap{
			{"name", "name"},
			{"code", "code"},
			{"departmentId", "department_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		ToModel: func(p *coursePayload) *models.Course {
			return &models.Course{
				Name:         *p.Name,
				Code:         *p.Code,
				DepartmentID: *p.DepartmentID,
			}
		},
	}}
}
