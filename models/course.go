package models

// Course represents a course taught by a department.
// It corresponds to the 'courses' table.
type Course struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Code         string `gorm:"not null" json:"code"`
	DepartmentID uint   `gorm:"not null;index" json:"departmentId"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Course) TableName() string {
	return "courses"
}
