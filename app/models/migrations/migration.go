package migrations

import (
	"github.com/hrakoto/go-annuaire/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Region{}, &models.City{}, &models.Listing{}, &models.Review{}, &models.BlogPost{})
}
