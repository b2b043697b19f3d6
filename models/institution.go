package models

// Institution represents a teaching institution from the earlier schema
// iteration. It corresponds to the 'institutions' table.
type Institution struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Region  string `gorm:"not null" json:"region"`
	Country string `gorm:"not null" json:"country"`

	Departments []Department `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"departments,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Institution) TableName() string {
	return "institutions"
}
