package repositories

import (
	"context"

	"github.com/hrakoto/go-annuaire/app/models"
	"gorm.io/gorm"
)

// CityRow is a city joined with its region's name. The join is inner on
// purpose: a city pointing at a missing region is excluded.
type CityRow struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	RegionID   uint   `json:"region_id"`
	RegionName string `json:"region_name"`
}

type LocationRepositoryImpl interface {
	GetRegions(ctx context.Context) ([]models.Region, error)
	GetCities(ctx context.Context) ([]CityRow, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepositoryImpl {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetRegions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	err := r.db.WithContext(ctx).Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *locationRepository) GetCities(ctx context.Context) ([]CityRow, error) {
	var rows []CityRow
	err := r.db.WithContext(ctx).
		Table("cities").
		Select("cities.id, cities.name, cities.region_id, regions.name AS region_name").
		Joins("JOIN regions ON regions.id = cities.region_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
