package models

// Department represents a department within an institution.
// It corresponds to the 'departments' table.
type Department struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	InstitutionID uint   `gorm:"not null;index" json:"institutionId"`

	Institution *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	Courses     []Course     `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Department) TableName() string {
	return "departments"
}
