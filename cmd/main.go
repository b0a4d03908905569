package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/config"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/handlers"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/middleware"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/notifier"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// Initialize Fiber; BodyLimit leaves headroom above the photo cap for
	// the rest of the multipart form.
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxPhotoBytes) + 1<<20,
	})
	app.Use(logger.New())
	app.Use(cors.New())

	if err := storage.Init(cfg.Storage); err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}

	db.ConnectMongoDB(cfg.MongoURI, cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("index creation failed")
	}
	cancel()

	services.Init(cfg.JWTSecret, cfg.MaxPhotoBytes)
	middleware.Init(cfg.JWTSecret)
	notifier.Init(cfg)
	defer notifier.Flush()

	// Serve uploaded files directly when using local storage.
	if local, ok := storage.Default.(*storage.LocalStorage); ok {
		app.Static("/uploads", local.BaseDir())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "message": "OK"})
	})

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterHandler)
	auth.Post("/login", handlers.LoginHandler)
	auth.Get("/me", middleware.AuthMiddleware, handlers.MeHandler)
	auth.Put("/me", middleware.AuthMiddleware, handlers.UpdateMeHandler)
	auth.Put("/password", middleware.AuthMiddleware, handlers.ChangePasswordHandler)

	// Public catalog
	api.Get("/products", handlers.ListProductsHandler)
	api.Get("/products/:id", handlers.GetProductHandler)
	api.Post("/products/:id/inquiries", handlers.CreateProductInquiryHandler)
	api.Get("/services", handlers.ListServicesHandler)
	api.Get("/services/:id", handlers.GetServiceHandler)
	api.Post("/services/:id/quotes", handlers.CreateServiceQuoteHandler)
	api.Get("/projects", handlers.ListProjectsHandler)
	api.Get("/projects/:id", handlers.GetProjectHandler)
	api.Get("/partners", handlers.ListPartnersHandler)
	api.Get("/partners/:id", handlers.GetPartnerHandler)

	// Lead capture
	api.Post("/contacts", handlers.CreateContactHandler)
	api.Post("/partnerships", handlers.CreatePartnershipHandler)
	api.Post("/newsletter/subscribe", handlers.SubscribeHandler)
	api.Post("/newsletter/unsubscribe", handlers.UnsubscribeHandler)

	// Awards microsite
	awards := api.Group("/awards")
	awards.Get("/categories", handlers.ListCategoriesHandler)
	awards.Get("/nominations", handlers.ListNominationsHandler)
	awards.Get("/nominations/:id", handlers.GetNominationHandler)
	awards.Post("/nominations", handlers.CreateNominationHandler)
	awards.Post("/nominations/:id/vote", handlers.VoteHandler)
	api.Get("/certificates/:certificateId/verify", handlers.VerifyCertificateHandler)

	// Admin routes
	admin := api.Group("/admin", middleware.AdminMiddleware)
	admin.Get("/users", handlers.ListUsersHandler)
	admin.Get("/users/:id", handlers.GetUserHandler)
	admin.Patch("/users/:id/active", handlers.SetUserActiveHandler)
	admin.Get("/notifications", handlers.ListNotificationsHandler)

	admin.Get("/products", handlers.AdminListProductsHandler)
	admin.Post("/products", handlers.CreateProductHandler)
	admin.Put("/products/:id", handlers.UpdateProductHandler)
	admin.Delete("/products/:id", handlers.DeleteProductHandler)

	admin.Get("/services", handlers.AdminListServicesHandler)
	admin.Post("/services", handlers.CreateServiceHandler)
	admin.Put("/services/:id", handlers.UpdateServiceHandler)
	admin.Delete("/services/:id", handlers.DeleteServiceHandler)

	admin.Get("/projects", handlers.AdminListProjectsHandler)
	admin.Post("/projects", handlers.CreateProjectHandler)
	admin.Put("/projects/:id", handlers.UpdateProjectHandler)
	admin.Delete("/projects/:id", handlers.DeleteProjectHandler)

	admin.Get("/partners", handlers.AdminListPartnersHandler)
	admin.Post("/partners", handlers.CreatePartnerHandler)
	admin.Put("/partners/:id", handlers.UpdatePartnerHandler)
	admin.Delete("/partners/:id", handlers.DeletePartnerHandler)

	admin.Get("/leads/:kind", handlers.AdminListLeadsHandler)
	admin.Patch("/leads/:kind/:id/status", handlers.AdminUpdateLeadStatusHandler)
	admin.Get("/newsletter", handlers.AdminListNewsletterHandler)

	admin.Get("/categories", handlers.AdminListCategoriesHandler)
	admin.Post("/categories", handlers.CreateCategoryHandler)
	admin.Put("/categories/:id", handlers.UpdateCategoryHandler)
	admin.Delete("/categories/:id", handlers.DeleteCategoryHandler)

	admin.Get("/nominations", handlers.AdminListNominationsHandler)
	admin.Patch("/nominations/:id/status", handlers.UpdateNominationStatusHandler)
	admin.Post("/nominations/:id/certificate", handlers.RegenerateCertificateHandler)
	admin.Delete("/nominations/:id", handlers.DeleteNominationHandler)
	admin.Get("/nominations/:id/votes", handlers.ListVotesHandler)
	admin.Delete("/nominations/:id/votes/:voteId", handlers.RemoveVoteHandler)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
