package repositories

import (
	"context"
	"strings"

	"github.com/hrakoto/go-annuaire/app/models"
	"gorm.io/gorm"
)

// ListingFilters are the optional, independently composable search filters.
type ListingFilters struct {
	CategorySlug string
	CityID       uint
	Search       string
	Featured     bool
}

type ListingRepositoryImpl interface {
	Create(ctx context.Context, listing *models.Listing) error
	Search(ctx context.Context, filters ListingFilters) ([]models.Listing, error)
	FindBySlug(ctx context.Context, slug string) (*models.Listing, error)
	FindByID(ctx context.Context, id uint) (*models.Listing, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Listing, error)
	FindByStatus(ctx context.Context, status string) ([]models.Listing, error)
	IncrementViews(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepositoryImpl {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// Search only ever returns published listings; the filters narrow that set.
// Substring matching is case-insensitive regardless of backend collation.
func (r *listingRepository) Search(ctx context.Context, filters ListingFilters) ([]models.Listing, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select("listings.*").
		Joins("JOIN categories ON categories.id = listings.category_id").
		Joins("JOIN cities ON cities.id = listings.city_id").
		Where("listings.status = ?", models.ListingStatusPublished)

	if filters.CategorySlug != "" {
		q = q.Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.CityID != 0 {
		q = q.Where("listings.city_id = ?", filters.CityID)
	}
	if filters.Search != "" {
		keyword := "%" + strings.ToLower(filters.Search) + "%"
		q = q.Where("(LOWER(listings.title) LIKE ? OR LOWER(listings.description) LIKE ?)", keyword, keyword)
	}
	if filters.Featured {
		q = q.Where("listings.is_featured = ?", true)
	}

	var listings []models.Listing
	err := q.
		Preload("Category").
		Preload("City").
		Order("listings.created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) FindBySlug(ctx context.Context, slug string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("City").
		Preload("User").
		First(&listing, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindByUser(ctx context.Context, userID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) FindByStatus(ctx context.Context, status string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("City").
		Preload("User").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// IncrementViews is a single UPDATE expression; concurrent detail fetches may
// still race between read and return, which is acceptable for an approximate
// popularity counter.
func (r *listingRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *listingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Listing{}).Count(&total).Error
	return total, err
}

func (r *listingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Listing{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *listingRepository) SumViews(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum).Error
	return sum, err
}
