package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/models"
	"github.com/hrakoto/go-annuaire/app/repositories"
)

func TestCreateListingDefaults(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newListingService(db)
	ctx := context.Background()

	listing, err := svc.Create(ctx, owner.ID, CreateListingInput{
		Title:       "Hôtel Carlton",
		CategoryID:  cat.ID,
		CityID:      city.ID,
		Description: "Hôtel 5 étoiles",
		Images:      []string{"a.jpg", "b.jpg", "c.jpg"},
		Hours:       map[string]string{"Lundi": "08:00-18:00"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(listing.Slug, "hotel-carlton-") {
		t.Errorf("slug = %q, want hotel-carlton-<ts>", listing.Slug)
	}
	if listing.Status != models.ListingStatusPending {
		t.Errorf("status = %q, want pending", listing.Status)
	}
	if listing.Views != 0 || listing.IsFeatured || listing.IsVerified {
		t.Errorf("unexpected defaults: views=%d featured=%v verified=%v", listing.Views, listing.IsFeatured, listing.IsVerified)
	}
}

func TestDetailIncrementsViewsAndRoundTripsImages(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newListingService(db)
	ctx := context.Background()

	images := []string{"facade.jpg", "chambre.jpg", "piscine.jpg"}
	created, err := svc.Create(ctx, owner.ID, CreateListingInput{
		Title: "Hôtel Carlton", CategoryID: cat.ID, CityID: city.ID,
		Description: "Hôtel 5 étoiles", Images: images,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Pending listings stay reachable by slug, and every fetch counts.
	first, err := svc.Detail(ctx, created.Slug)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if first.Status != models.ListingStatusPending {
		t.Errorf("status = %q, want pending", first.Status)
	}
	if first.Views != 1 {
		t.Errorf("views after first fetch = %d, want 1", first.Views)
	}
	if !reflect.DeepEqual(first.Images, images) {
		t.Errorf("images = %v, want %v", first.Images, images)
	}
	if first.CategoryName != cat.Name || first.CityName != city.Name || first.OwnerName != owner.Name {
		t.Errorf("joined names = %q/%q/%q", first.CategoryName, first.CityName, first.OwnerName)
	}

	second, err := svc.Detail(ctx, created.Slug)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if second.Views != 2 {
		t.Errorf("views after second fetch = %d, want 2", second.Views)
	}
}

func TestDetailUnknownSlug(t *testing.T) {
	db := setupTestDB(t)
	seedReference(t, db)
	svc := newListingService(db)

	_, err := svc.Detail(context.Background(), "inexistant")
	if err != helpers.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSearchOnlyPublished(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newListingService(db)
	ctx := context.Background()

	statuses := []string{models.ListingStatusPending, models.ListingStatusPublished, models.ListingStatusRejected}
	for i, status := range statuses {
		l := models.Listing{
			UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID,
			Title: "Listing " + status, Slug: "listing-" + status, Description: "desc",
			Status: status, IsFeatured: i == 1,
		}
		if err := db.Create(&l).Error; err != nil {
			t.Fatalf("seed %s: %v", status, err)
		}
	}

	results, err := svc.Search(ctx, repositories.ListingFilters{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Status != models.ListingStatusPublished {
		t.Fatalf("results = %+v, want only the published listing", results)
	}
	if results[0].CategoryName != cat.Name || results[0].CityName != city.Name {
		t.Errorf("joined names = %q/%q", results[0].CategoryName, results[0].CityName)
	}

	// Non-published stays excluded under every filter combination.
	for _, f := range []repositories.ListingFilters{
		{CategorySlug: cat.Slug},
		{CityID: city.ID},
		{Search: "listing"},
		{Featured: true},
		{CategorySlug: cat.Slug, CityID: city.ID, Search: "listing", Featured: true},
	} {
		results, err := svc.Search(ctx, f)
		if err != nil {
			t.Fatalf("search %+v: %v", f, err)
		}
		for _, got := range results {
			if got.Status != models.ListingStatusPublished {
				t.Errorf("filter %+v leaked status %q", f, got.Status)
			}
		}
	}

	// The owner still sees all three.
	mine, err := svc.MyListings(ctx, owner.ID)
	if err != nil {
		t.Fatalf("my listings: %v", err)
	}
	if len(mine) != 3 {
		t.Errorf("owner sees %d listings, want 3", len(mine))
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newListingService(db)
	ctx := context.Background()

	l := models.Listing{
		UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID,
		Title: "Baobab Mall Mahajanga", Slug: "baobab-mall",
		Description: "Le plus grand centre commercial", Status: models.ListingStatusPublished,
	}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, kw := range []string{"baobab", "BAOBAB", "centre COMMERCIAL"} {
		results, err := svc.Search(ctx, repositories.ListingFilters{Search: kw})
		if err != nil {
			t.Fatalf("search %q: %v", kw, err)
		}
		if len(results) != 1 {
			t.Errorf("search %q matched %d listings, want 1", kw, len(results))
		}
	}
}

func TestAddReview(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newListingService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, CreateListingInput{
		Title: "Hôtel Carlton", CategoryID: cat.ID, CityID: city.ID, Description: "desc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	review, err := svc.AddReview(ctx, owner.ID, created.Slug, CreateReviewInput{Rating: 5, Comment: "Excellent !"})
	if err != nil {
		t.Fatalf("add review: %v", err)
	}
	if review.UserName != owner.Name || review.Rating != 5 {
		t.Errorf("review = %+v", review)
	}

	detail, err := svc.Detail(ctx, created.Slug)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Reviews) != 1 || detail.Reviews[0].UserName != owner.Name {
		t.Errorf("detail reviews = %+v", detail.Reviews)
	}

	var apiErr *helpers.APIError
	_, err = svc.AddReview(ctx, owner.ID, "inexistant", CreateReviewInput{Rating: 3})
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Errorf("unknown slug: got %v, want 404", err)
	}
}
