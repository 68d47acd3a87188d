package models

import "time"

type Listing struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"index" json:"user_id"`
	User        User              `gorm:"foreignKey:UserID" json:"-"`
	CategoryID  uint              `gorm:"index" json:"category_id"`
	Category    Category          `gorm:"foreignKey:CategoryID" json:"-"`
	CityID      uint              `gorm:"index" json:"city_id"`
	City        City              `gorm:"foreignKey:CityID" json:"-"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Slug        string            `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string            `gorm:"type:text" json:"description"`
	Address     string            `gorm:"size:255" json:"address"`
	Phone       string            `gorm:"size:50" json:"phone"`
	Whatsapp    string            `gorm:"size:50" json:"whatsapp"`
	Email       string            `gorm:"size:100" json:"email"`
	Website     string            `gorm:"size:255" json:"website"`
	Logo        string            `gorm:"size:255" json:"logo"`
	Images      []string          `gorm:"serializer:json;type:text" json:"images"`
	Hours       map[string]string `gorm:"serializer:json;type:text" json:"hours"`
	IsFeatured  bool              `gorm:"default:false" json:"is_featured"`
	IsVerified  bool              `gorm:"default:false" json:"is_verified"`
	Status      string            `gorm:"size:20;default:'pending';index" json:"status"`
	Views       int               `gorm:"default:0" json:"views"`
	CreatedAt   time.Time         `json:"created_at"`
}

const (
	ListingStatusPending   = "pending"
	ListingStatusPublished = "published"
	ListingStatusRejected  = "rejected"
)
