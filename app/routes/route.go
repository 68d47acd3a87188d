package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hrakoto/go-annuaire/app/configs"
	"github.com/hrakoto/go-annuaire/app/handlers"
	"github.com/hrakoto/go-annuaire/app/handlers/admin"
	"github.com/hrakoto/go-annuaire/app/middlewares"
	"github.com/hrakoto/go-annuaire/app/models"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"github.com/hrakoto/go-annuaire/app/services"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	rnd := render.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	authSvc := services.NewAuthService(userRepo, env.JWTSecret)
	listingSvc := services.NewListingService(listingRepo, reviewRepo, userRepo)
	adminSvc := services.NewAdminService(userRepo, listingRepo)

	authHandler := handlers.NewAuthHandler(rnd, authSvc, validate)
	referenceHandler := handlers.NewReferenceHandler(rnd, categoryRepo, locationRepo)
	listingHandler := handlers.NewListingHandler(rnd, listingSvc, validate)
	blogHandler := handlers.NewBlogHandler(rnd, blogRepo)
	adminHandler := admin.NewAdminHandler(rnd, adminSvc)

	router := mux.NewRouter()
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RecoveryMiddleware(rnd))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/categories", referenceHandler.Categories).Methods("GET")
	api.HandleFunc("/regions", referenceHandler.Regions).Methods("GET")
	api.HandleFunc("/cities", referenceHandler.Cities).Methods("GET")
	api.HandleFunc("/listings", listingHandler.Search).Methods("GET")
	api.HandleFunc("/listings/{slug}", listingHandler.Detail).Methods("GET")
	api.HandleFunc("/blog", blogHandler.List).Methods("GET")
	api.HandleFunc("/blog/{slug}", blogHandler.Detail).Methods("GET")

	authenticated := api.NewRoute().Subrouter()
	authenticated.Use(middlewares.Authenticate(authSvc, rnd))
	authenticated.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	authenticated.HandleFunc("/my-listings", listingHandler.MyListings).Methods("GET")
	authenticated.HandleFunc("/listings", listingHandler.Create).Methods("POST")
	authenticated.HandleFunc("/listings/{slug}/reviews", listingHandler.CreateReview).Methods("POST")

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.Authenticate(authSvc, rnd))
	adminRouter.Use(middlewares.RequireRole(models.RoleAdmin, rnd))
	adminRouter.HandleFunc("/stats", adminHandler.Stats).Methods("GET")
	adminRouter.HandleFunc("/listings", adminHandler.Listings).Methods("GET")
	adminRouter.HandleFunc("/listings/{id}/status", adminHandler.SetListingStatus).Methods("PATCH")

	return router
}
