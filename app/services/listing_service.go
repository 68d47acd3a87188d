package services

import (
	"context"
	"time"

	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/models"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"go.uber.org/zap"
)

// ListingResult is a search row: the listing with its category and city names
// flattened in, matching the joined rows the API has always returned.
type ListingResult struct {
	models.Listing
	CategoryName string `json:"category_name"`
	CityName     string `json:"city_name"`
}

type ReviewResult struct {
	models.Review
	UserName string `json:"user_name"`
}

type ListingDetail struct {
	models.Listing
	CategoryName string         `json:"category_name"`
	CityName     string         `json:"city_name"`
	OwnerName    string         `json:"owner_name"`
	Reviews      []ReviewResult `json:"reviews"`
}

type CreateListingInput struct {
	Title       string
	CategoryID  uint
	CityID      uint
	Description string
	Address     string
	Phone       string
	Whatsapp    string
	Email       string
	Website     string
	Logo        string
	Images      []string
	Hours       map[string]string
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}

type ListingService interface {
	Search(ctx context.Context, filters repositories.ListingFilters) ([]ListingResult, error)
	Detail(ctx context.Context, slug string) (*ListingDetail, error)
	MyListings(ctx context.Context, userID uint) ([]models.Listing, error)
	Create(ctx context.Context, userID uint, input CreateListingInput) (*models.Listing, error)
	AddReview(ctx context.Context, userID uint, slug string, input CreateReviewInput) (*ReviewResult, error)
}

type listingService struct {
	listingRepo repositories.ListingRepositoryImpl
	reviewRepo  repositories.ReviewRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
}

func NewListingService(
	listingRepo repositories.ListingRepositoryImpl,
	reviewRepo repositories.ReviewRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

func (s *listingService) Search(ctx context.Context, filters repositories.ListingFilters) ([]ListingResult, error) {
	listings, err := s.listingRepo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	results := make([]ListingResult, 0, len(listings))
	for _, l := range listings {
		results = append(results, ListingResult{
			Listing:      l,
			CategoryName: l.Category.Name,
			CityName:     l.City.Name,
		})
	}
	return results, nil
}

// Detail is not status-gated: pending and rejected listings stay reachable by
// slug so owners can preview them. Every fetch counts as a view.
func (s *listingService) Detail(ctx context.Context, slug string) (*ListingDetail, error) {
	listing, err := s.listingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, helpers.ErrNotFound
	}

	if err := s.listingRepo.IncrementViews(ctx, listing.ID); err != nil {
		return nil, err
	}
	listing.Views++

	reviews, err := s.reviewRepo.FindByListing(ctx, listing.ID)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{
		Listing:      *listing,
		CategoryName: listing.Category.Name,
		CityName:     listing.City.Name,
		OwnerName:    listing.User.Name,
		Reviews:      make([]ReviewResult, 0, len(reviews)),
	}
	for _, rev := range reviews {
		detail.Reviews = append(detail.Reviews, ReviewResult{
			Review:   rev,
			UserName: rev.User.Name,
		})
	}
	return detail, nil
}

func (s *listingService) MyListings(ctx context.Context, userID uint) ([]models.Listing, error) {
	return s.listingRepo.FindByUser(ctx, userID)
}

func (s *listingService) Create(ctx context.Context, userID uint, input CreateListingInput) (*models.Listing, error) {
	listing := &models.Listing{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		CityID:      input.CityID,
		Title:       input.Title,
		Slug:        helpers.ListingSlug(input.Title, time.Now()),
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Whatsapp:    input.Whatsapp,
		Email:       input.Email,
		Website:     input.Website,
		Logo:        input.Logo,
		Images:      input.Images,
		Hours:       input.Hours,
		Status:      models.ListingStatusPending,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		// Slug-uniqueness or foreign-key violation surfaces as a 400.
		return nil, helpers.ValidationError(err.Error())
	}
	zap.S().Infof("listing %q created by user %d (pending moderation)", listing.Slug, userID)
	return listing, nil
}

func (s *listingService) AddReview(ctx context.Context, userID uint, slug string, input CreateReviewInput) (*ReviewResult, error) {
	listing, err := s.listingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, helpers.ErrNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, helpers.ErrNotFound
	}

	review := &models.Review{
		ListingID: listing.ID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, helpers.ValidationError(err.Error())
	}
	return &ReviewResult{Review: *review, UserName: user.Name}, nil
}
