package models

// AffinityBonus represents the table of bonus tiers a character unlocks as
// its affinity level grows. It corresponds to the 'affinity_bonuses' table.
type AffinityBonus struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Bonus5      string `gorm:"column:bonus5;not null" json:"bonus5"`
	Bonus15     string `gorm:"column:bonus15;not null" json:"bonus15"`
	Bonus30     string `gorm:"column:bonus30;not null" json:"bonus30"`
	Bonus50     string `gorm:"column:bonus50;not null" json:"bonus50"`
	Bonus75     string `gorm:"column:bonus75;not null" json:"bonus75"`
	Bonus80     string `gorm:"column:bonus80;not null" json:"bonus80"`
	Bonus105    string `gorm:"column:bonus105;not null" json:"bonus105"`
	Bonus120    string `gorm:"column:bonus120;not null" json:"bonus120"`
	Bonus140    string `gorm:"column:bonus140;not null" json:"bonus140"`
	Bonus175    string `gorm:"column:bonus175;not null" json:"bonus175"`
	Bonus200    string `gorm:"column:bonus200;not null" json:"bonus200"`
	Bonus215    string `gorm:"column:bonus215;not null" json:"bonus215"`
	Bonus225    string `gorm:"column:bonus225;not null" json:"bonus225"`
	Bonus255    string `gorm:"column:bonus255;not null" json:"bonus255"`
	CharacterID uint   `gorm:"not null;index" json:"characterId"`

	Character *Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (AffinityBonus) TableName() string {
	return "affinity_bonuses"
}
