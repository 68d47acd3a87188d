package models

type Region struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

type City struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	RegionID uint   `gorm:"index" json:"region_id"`
	Region   Region `gorm:"foreignKey:RegionID" json:"-"`
}
