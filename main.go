package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"restaurant-api/config"
	"restaurant-api/controllers"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	logger.Info("Running database migrations")
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	seedAdmin(db, logger)

	tokenStore := repository.NewTokenStore(cfg)
	if err := tokenStore.Ping(context.Background()); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer tokenStore.Close()

	kafkaSvc, err := services.NewKafkaService(cfg.Kafka.Brokers, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Kafka service", zap.Error(err))
	}

	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := services.NewAuthService(userRepo, tokenStore, cfg.Auth.TokenTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, userRepo, kafkaSvc, cfg.Kafka.Topic, logger)
	groupSvc := services.NewGroupService(userRepo)

	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.Auth(authSvc))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/auth/users", authCtrl.Register)
	app.Get("/auth/users/me", authCtrl.Me)
	app.Post("/auth/token/login", authCtrl.Login)
	app.Post("/auth/token/logout", authCtrl.Logout)

	catalogLimit := middleware.RateLimit(cfg.Server.RateLimit)
	app.Get("/menu-items", catalogLimit, menuCtrl.ListMenuItems)
	app.Post("/menu-items", catalogLimit, menuCtrl.CreateMenuItem)
	app.Get("/menu-items/:id", catalogLimit, menuCtrl.GetMenuItem)
	app.Put("/menu-items/:id", catalogLimit, menuCtrl.UpdateMenuItem)
	app.Patch("/menu-items/:id", catalogLimit, menuCtrl.UpdateMenuItem)
	app.Delete("/menu-items/:id", catalogLimit, menuCtrl.DeleteMenuItem)

	app.Get("/categories", menuCtrl.ListCategories)
	app.Post("/categories", menuCtrl.CreateCategory)
	app.Get("/featured", menuCtrl.ListFeatured)
	app.Post("/featured", menuCtrl.ToggleFeatured)

	app.Get("/groups/manager/users", groupCtrl.ListManagers)
	app.Post("/groups/manager/users", groupCtrl.AddManager)
	app.Delete("/groups/manager/users/:username", groupCtrl.RemoveManager)
	app.Get("/groups/delivery-crew/users", groupCtrl.ListDeliveryCrew)
	app.Post("/groups/delivery-crew/users", groupCtrl.AddDeliveryCrew)
	app.Delete("/groups/delivery-crew/users/:username", groupCtrl.RemoveDeliveryCrew)

	app.Get("/cart/menu-items", cartCtrl.ListItems)
	app.Post("/cart/menu-items", cartCtrl.AddItem)
	app.Delete("/cart/menu-items", cartCtrl.Clear)

	app.Get("/orders", orderCtrl.ListOrders)
	app.Post("/orders", orderCtrl.Checkout)
	app.Get("/orders/:id", orderCtrl.GetOrder)
	app.Put("/orders/:id", orderCtrl.UpdateOrder)
	app.Patch("/orders/:id", orderCtrl.UpdateOrder)
	app.Delete("/orders/:id", orderCtrl.DeleteOrder)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", zap.String("address", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// seedAdmin creates the initial superuser when no user holds the flag.
// The password comes from ADMIN_PASSWORD; without it nothing is seeded.
func seedAdmin(db *gorm.DB, logger *zap.Logger) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return
	}

	var existing models.User
	if db.Where("superuser = ?", true).First(&existing).Error == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash admin password", zap.Error(err))
		return
	}
	admin := models.User{Username: "admin", PasswordHash: string(hash), Superuser: true}
	if err := db.Create(&admin).Error; err != nil {
		logger.Error("Failed to seed admin user", zap.Error(err))
		return
	}
	logger.Info("Seeded superuser account", zap.String("username", admin.Username))
}
