package services

import (
	"context"

	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/models"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"go.uber.org/zap"
)

type StatCount struct {
	Count int64 `json:"count"`
}

type Stats struct {
	Users    StatCount `json:"users"`
	Listings StatCount `json:"listings"`
	Pending  StatCount `json:"pending"`
	Views    StatCount `json:"views"`
}

// ModerationListing is a queue row joined with everything an admin needs to
// review a submission.
type ModerationListing struct {
	models.Listing
	CategoryName string `json:"category_name"`
	CityName     string `json:"city_name"`
	OwnerName    string `json:"owner_name"`
}

type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
	ListingsByStatus(ctx context.Context, status string) ([]ModerationListing, error)
	SetListingStatus(ctx context.Context, id uint, status string) (*models.Listing, error)
}

type adminService struct {
	userRepo    repositories.UserRepositoryImpl
	listingRepo repositories.ListingRepositoryImpl
}

func NewAdminService(userRepo repositories.UserRepositoryImpl, listingRepo repositories.ListingRepositoryImpl) AdminService {
	return &adminService{userRepo: userRepo, listingRepo: listingRepo}
}

func (s *adminService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.listingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.listingRepo.CountByStatus(ctx, models.ListingStatusPending)
	if err != nil {
		return nil, err
	}
	views, err := s.listingRepo.SumViews(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:    StatCount{Count: users},
		Listings: StatCount{Count: listings},
		Pending:  StatCount{Count: pending},
		Views:    StatCount{Count: views},
	}, nil
}

func (s *adminService) ListingsByStatus(ctx context.Context, status string) ([]ModerationListing, error) {
	if status == "" {
		status = models.ListingStatusPending
	}
	listings, err := s.listingRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	rows := make([]ModerationListing, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, ModerationListing{
			Listing:      l,
			CategoryName: l.Category.Name,
			CityName:     l.City.Name,
			OwnerName:    l.User.Name,
		})
	}
	return rows, nil
}

// SetListingStatus moves a listing to published or rejected. Pending is only
// ever the initial state and is not a valid target; published and rejected
// are terminal. Setting the current status again is a no-op.
func (s *adminService) SetListingStatus(ctx context.Context, id uint, status string) (*models.Listing, error) {
	if status != models.ListingStatusPublished && status != models.ListingStatusRejected {
		return nil, helpers.ValidationError("status must be published or rejected")
	}

	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, helpers.ErrNotFound
	}
	if listing.Status != models.ListingStatusPending && status != listing.Status {
		return nil, helpers.ValidationError("listing already moderated")
	}

	if err := s.listingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	listing.Status = status
	zap.S().Infof("listing %d moderated to %s", id, status)
	return listing, nil
}
