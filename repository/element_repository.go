package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/models"
)

// ElementRepository handles database operations for Element entities
type ElementRepository struct {
	*CRUD[models.Element]
}

// NewElementRepository creates a new instance of ElementRepository
func NewElementRepository(db *gorm.DB) *ElementRepository {
	return &ElementRepository{CRUD: NewCRUD[models.Element](db, "Character")}
}

// FindByValue retrieves the element row with the given value for one
// character, if any.
func (r *ElementRepository) FindByValue(element string, characterID uint) (*models.Element, error) {
	var row models.Element
	err := r.DB.Where("element = ? AND character_id = ?", element, characterID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find element %s for character %d: %w", element, characterID, err)
	}
	return &row, nil
}
