package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Icon        string `gorm:"size:100" json:"icon"`
	Description string `gorm:"type:text" json:"description"`
}
