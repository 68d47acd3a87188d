package services

import (
	"testing"

	"github.com/hrakoto/go-annuaire/app/models"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Region{}, &models.City{}, &models.Listing{}, &models.Review{}, &models.BlogPost{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedReference(t *testing.T, db *gorm.DB) (models.Category, models.City, models.User) {
	t.Helper()
	cat := models.Category{Name: "Hôtels & Hébergement", Slug: "hotels-hebergement"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	region := models.Region{Name: "Analamanga"}
	if err := db.Create(&region).Error; err != nil {
		t.Fatalf("region: %v", err)
	}
	city := models.City{Name: "Antananarivo", RegionID: region.ID}
	if err := db.Create(&city).Error; err != nil {
		t.Fatalf("city: %v", err)
	}
	owner := models.User{Name: "Jean Pro", Email: "pro@mada.mg", Password: "x", Role: models.RolePro}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("owner: %v", err)
	}
	return cat, city, owner
}

func newListingService(db *gorm.DB) ListingService {
	return NewListingService(
		repositories.NewListingRepository(db),
		repositories.NewReviewRepository(db),
		repositories.NewUserRepository(db),
	)
}

func newAdminService(db *gorm.DB) AdminService {
	return NewAdminService(
		repositories.NewUserRepository(db),
		repositories.NewListingRepository(db),
	)
}
