package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/models"
)

func TestStatsEmptyDirectory(t *testing.T) {
	db := setupTestDB(t)
	_, _, _ = seedReference(t, db) // one user, zero listings
	svc := newAdminService(db)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Users.Count != 1 {
		t.Errorf("users = %d, want 1", stats.Users.Count)
	}
	if stats.Listings.Count != 0 || stats.Pending.Count != 0 || stats.Views.Count != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
}

func TestStatsCountsAndViewsSum(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newAdminService(db)

	listings := []models.Listing{
		{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "A", Slug: "a", Status: models.ListingStatusPending, Views: 3},
		{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "B", Slug: "b", Status: models.ListingStatusPublished, Views: 7},
	}
	if err := db.Create(&listings).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Listings.Count != 2 || stats.Pending.Count != 1 || stats.Views.Count != 10 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSetListingStatus(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newAdminService(db)
	ctx := context.Background()

	l := models.Listing{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "A", Slug: "a", Status: models.ListingStatusPending}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.SetListingStatus(ctx, l.ID, models.ListingStatusPublished)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if updated.Status != models.ListingStatusPublished {
		t.Errorf("status = %q", updated.Status)
	}

	// Idempotent: publishing a published listing is a no-op, not an error.
	again, err := svc.SetListingStatus(ctx, l.ID, models.ListingStatusPublished)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if again.Status != models.ListingStatusPublished {
		t.Errorf("status = %q", again.Status)
	}

	var apiErr *helpers.APIError
	_, err = svc.SetListingStatus(ctx, l.ID, "pending")
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Errorf("pending target: got %v, want 400", err)
	}
	_, err = svc.SetListingStatus(ctx, l.ID, "archived")
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Errorf("bogus target: got %v, want 400", err)
	}
	_, err = svc.SetListingStatus(ctx, 9999, models.ListingStatusRejected)
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Errorf("unknown id: got %v, want 404", err)
	}
}

func TestSetListingStatusTerminal(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newAdminService(db)
	ctx := context.Background()

	listings := []models.Listing{
		{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "A", Slug: "a", Status: models.ListingStatusPublished},
		{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "B", Slug: "b", Status: models.ListingStatusRejected},
	}
	if err := db.Create(&listings).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	var apiErr *helpers.APIError
	_, err := svc.SetListingStatus(ctx, listings[0].ID, models.ListingStatusRejected)
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Errorf("published->rejected: got %v, want 400", err)
	}
	_, err = svc.SetListingStatus(ctx, listings[1].ID, models.ListingStatusPublished)
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Errorf("rejected->published: got %v, want 400", err)
	}

	// Restating the current status is still a no-op.
	kept, err := svc.SetListingStatus(ctx, listings[1].ID, models.ListingStatusRejected)
	if err != nil {
		t.Fatalf("re-reject: %v", err)
	}
	if kept.Status != models.ListingStatusRejected {
		t.Errorf("status = %q", kept.Status)
	}

	var stored models.Listing
	if err := db.First(&stored, listings[0].ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Status != models.ListingStatusPublished {
		t.Errorf("stored status = %q, want published untouched", stored.Status)
	}
}

func TestListingsByStatusDefaultsToPending(t *testing.T) {
	db := setupTestDB(t)
	cat, city, owner := seedReference(t, db)
	svc := newAdminService(db)

	listings := []models.Listing{
		{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "A", Slug: "a", Status: models.ListingStatusPending},
		{UserID: owner.ID, CategoryID: cat.ID, CityID: city.ID, Title: "B", Slug: "b", Status: models.ListingStatusPublished},
	}
	if err := db.Create(&listings).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows, err := svc.ListingsByStatus(context.Background(), "")
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(rows) != 1 || rows[0].Slug != "a" {
		t.Fatalf("rows = %+v, want the single pending listing", rows)
	}
	if rows[0].OwnerName != owner.Name || rows[0].CategoryName != cat.Name || rows[0].CityName != city.Name {
		t.Errorf("joined names = %+v", rows[0])
	}
}
