package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/models"
)

// InstitutionRepository handles database operations for Institution entities
type InstitutionRepository struct {
	*CRUD[models.Institution]
}

// NewInstitutionRepository creates a new instance of InstitutionRepository
func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{CRUD: NewCRUD[models.Institution](db, "Departments")}
}

// Delete removes an institution together with its departments and their
// courses in one transaction.
func (r *InstitutionRepository) Delete(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var departmentIDs []uint
		err := tx.Model(&models.Department{}).
			Where("institution_id = ?", id).
			Pluck("id", &departmentIDs).Error
		if err != nil {
			return err
		}

		if len(departmentIDs) > 0 {
			if err := tx.Where("department_id IN ?", departmentIDs).Delete(&models.Course{}).Error; err != nil {
				return err
			}
			if err := tx.Where("institution_id = ?", id).Delete(&models.Department{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Institution{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete institution ID %d: %w", id, err)
	}
	return nil
}

// DepartmentRepository handles database operations for Department entities
type DepartmentRepository struct {
	*CRUD[models.Department]
}

// NewDepartmentRepository creates a new instance of DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{CRUD: NewCRUD[models.Department](db, "Courses")}
}

// Delete removes a department and its courses in one transaction.
func (r *DepartmentRepository) Delete(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", id).Delete(&models.Course{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Department{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete department ID %d: %w", id, err)
	}
	return nil
}
