package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron"

	"tienda/internal/config"
	"tienda/internal/domain/model"
	"tienda/internal/handler"
	"tienda/internal/infra/cartstore"
	"tienda/internal/infra/db"
	infraRepo "tienda/internal/infra/repository"
	"tienda/internal/mailer"
	"tienda/internal/server"
	"tienda/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Offer{},
		&model.Customer{},
		&model.Order{},
		&model.OrderLine{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	// Repositories
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	offerRepo := infraRepo.NewOfferGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderLineRepo := infraRepo.NewOrderLineGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	statsRepo := infraRepo.NewStatsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	cartStore := cartstore.NewMemory(cfg.CartTTL)

	mail := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUser,
		Password:   cfg.SMTPPass,
		From:       cfg.MailFrom,
		AdminEmail: cfg.AdminEmail,
	})

	// Usecases
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, offerRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo)
	offerUC := usecase.NewOfferUsecase(offerRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartStore, productRepo, offerRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cartStore, orderRepo, mail)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderLineRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderLineRepo)
	dashboardUC := usecase.NewDashboardUsecase(statsRepo, customerRepo)
	authUC := usecase.NewAuthUsecase(cfg, customerRepo, cartStore)
	maintenanceUC := usecase.NewMaintenanceUsecase(cartStore, orderRepo, orderLineRepo, mail)

	// Scheduled jobs: hourly cart sweep, daily payment reminders.
	c := cron.New()
	if err := c.AddFunc("@every 1h", func() {
		maintenanceUC.PurgeExpiredCarts(context.Background())
	}); err != nil {
		log.Fatalf("cron: %v", err)
	}
	if err := c.AddFunc("0 0 10 * * *", func() {
		maintenanceUC.RemindPendingPayments(context.Background(), 48*time.Hour)
	}); err != nil {
		log.Fatalf("cron: %v", err)
	}
	c.Start()
	defer c.Stop()

	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, server.Handlers{
		Products:     handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		Orders:       handler.NewOrderHandler(orderUC),
		Auth:         handler.NewAuthHandler(authUC),
		Chatbot:      handler.NewChatbotHandler(),
		AdminOrders:  handler.NewAdminOrderHandler(adminOrderUC),
		AdminCatalog: handler.NewAdminCatalogHandler(productUC, categoryUC, offerUC),
		Dashboard:    handler.NewDashboardHandler(dashboardUC),
	})

	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
