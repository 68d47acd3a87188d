package seeders

import (
	"github.com/hrakoto/go-annuaire/app/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DBSeed populates reference data and demo accounts. It is idempotent: the
// taxonomy is only inserted when no category exists yet, and accounts plus
// demo listings only when no user exists yet.
func DBSeed(db *gorm.DB) error {
	var categoryCount, userCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if categoryCount == 0 {
		if err := seedReferenceData(db); err != nil {
			return err
		}
	}
	if userCount == 0 {
		if err := seedAccounts(db); err != nil {
			return err
		}
	}
	return nil
}

func seedReferenceData(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Hôtels & Hébergement", Slug: "hotels-hebergement", Icon: "Hotel"},
		{Name: "Restaurants & Cafés", Slug: "restaurants-cafes", Icon: "Utensils"},
		{Name: "Santé & Médical", Slug: "sante-medical", Icon: "Stethoscope"},
		{Name: "Automobile & Transport", Slug: "automobile-transport", Icon: "Car"},
		{Name: "Services Professionnels", Slug: "services-professionnels", Icon: "Briefcase"},
		{Name: "Shopping & Commerces", Slug: "shopping-commerces", Icon: "ShoppingBag"},
		{Name: "Art & Culture", Slug: "art-culture", Icon: "Palette"},
		{Name: "Technologie & Informatique", Slug: "technologie-informatique", Icon: "Laptop"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	regions := []models.Region{
		{Name: "Analamanga"},
		{Name: "Vakinankaratra"},
		{Name: "Atsinanana"},
		{Name: "Diana"},
		{Name: "Boeny"},
		{Name: "Sava"},
		{Name: "Anosy"},
		{Name: "Menabe"},
	}
	if err := db.Create(&regions).Error; err != nil {
		return err
	}

	cities := []models.City{
		{Name: "Antananarivo", RegionID: regions[0].ID},
		{Name: "Antsirabe", RegionID: regions[1].ID},
		{Name: "Toamasina", RegionID: regions[2].ID},
		{Name: "Antsiranana", RegionID: regions[3].ID},
		{Name: "Mahajanga", RegionID: regions[4].ID},
		{Name: "Sambava", RegionID: regions[5].ID},
		{Name: "Fort-Dauphin", RegionID: regions[6].ID},
		{Name: "Morondava", RegionID: regions[7].ID},
	}
	if err := db.Create(&cities).Error; err != nil {
		return err
	}

	zap.S().Info("seeded categories, regions and cities")
	return nil
}

func seedAccounts(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Admin Mada", Email: "admin@mada.mg", Password: string(hash), Role: models.RoleAdmin},
		{Name: "Jean Pro", Email: "pro@mada.mg", Password: string(hash), Role: models.RolePro},
		{Name: "Client Lambda", Email: "user@mada.mg", Password: string(hash), Role: models.RoleUser},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	pro := users[1]
	client := users[2]

	listings := []models.Listing{
		{
			UserID: pro.ID, CategoryID: 1, CityID: 1,
			Title: "Hôtel Carlton", Slug: "hotel-carlton",
			Description: "Hôtel 5 étoiles au coeur d'Antananarivo avec vue panoramique.",
			Address:     "Anosy, Antananarivo",
			Phone:       "+261 20 22 260 60",
			Whatsapp:    "+261 34 00 000 01",
			Email:       "contact@carlton.mg",
			Website:     "https://carlton.mg",
			IsFeatured:  true, IsVerified: true, Status: models.ListingStatusPublished,
		},
		{
			UserID: pro.ID, CategoryID: 2, CityID: 1,
			Title: "Le Jardin d'Antanimena", Slug: "le-jardin-antanimena",
			Description: "Cuisine raffinée dans un cadre verdoyant et calme.",
			Address:     "Antanimena, Antananarivo",
			Phone:       "+261 20 22 333 44",
			Email:       "info@lejardin.mg",
			IsVerified:  true, Status: models.ListingStatusPublished,
		},
		{
			UserID: pro.ID, CategoryID: 3, CityID: 1,
			Title: "Clinique et Maternité d'Ankadifotsy", Slug: "clinique-ankadifotsy",
			Description: "Soins médicaux de qualité et urgences 24h/24.",
			Address:     "Ankadifotsy, Antananarivo",
			Phone:       "+261 20 22 235 55",
			IsVerified:  true, Status: models.ListingStatusPublished,
		},
		{
			UserID: pro.ID, CategoryID: 1, CityID: 3,
			Title: "Hôtel de l'Avenue Toamasina", Slug: "hotel-avenue-toamasina",
			Description: "Confort et proximité du port pour vos séjours d'affaires.",
			Address:     "Boulevard Joffre, Toamasina",
			Phone:       "+261 20 53 321 00",
			Email:       "resa@hotelavenue.mg",
			IsFeatured:  true, Status: models.ListingStatusPublished,
		},
		{
			UserID: pro.ID, CategoryID: 6, CityID: 5,
			Title: "Baobab Mall Mahajanga", Slug: "baobab-mall",
			Description: "Le plus grand centre commercial de la ville avec boutiques et food court.",
			Address:     "Bord de mer, Mahajanga",
			Status:      models.ListingStatusPublished,
		},
	}
	if err := db.Create(&listings).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{ListingID: listings[0].ID, UserID: client.ID, Rating: 5, Comment: "Excellent service et vue imprenable !"},
		{ListingID: listings[0].ID, UserID: pro.ID, Rating: 4, Comment: "Très bon séjour, personnel accueillant."},
		{ListingID: listings[1].ID, UserID: client.ID, Rating: 5, Comment: "Le meilleur canard laqué de Tana."},
	}
	if err := db.Create(&reviews).Error; err != nil {
		return err
	}

	zap.S().Info("seeded demo accounts, listings and reviews")
	return nil
}
