package repository

import (
	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/models"
)

// Repositories below have no uniqueness lookups of their own; they are plain
// CRUD instantiations.

// AttributeRepository handles database operations for Attribute entities
type AttributeRepository struct {
	*CRUD[models.Attribute]
}

// NewAttributeRepository creates a new instance of AttributeRepository
func NewAttributeRepository(db *gorm.DB) *AttributeRepository {
	return &AttributeRepository{CRUD: NewCRUD[models.Attribute](db, "Character")}
}

// AffinityBonusRepository handles database operations for AffinityBonus entities
type AffinityBonusRepository struct {
	*CRUD[models.AffinityBonus]
}

// NewAffinityBonusRepository creates a new instance of AffinityBonusRepository
func NewAffinityBonusRepository(db *gorm.DB) *AffinityBonusRepository {
	return &AffinityBonusRepository{CRUD: NewCRUD[models.AffinityBonus](db, "Character")}
}

// CourseRepository handles database operations for Course entities
type CourseRepository struct {
	*CRUD[models.Course]
}

// NewCourseRepository creates a new instance of CourseRepository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{CRUD: NewCRUD[models.Course](db)}
}
