package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/saad710/shop-api/internal/api"
	"github.com/saad710/shop-api/internal/config"
	"github.com/saad710/shop-api/internal/events"
	"github.com/saad710/shop-api/internal/jwt"
	"github.com/saad710/shop-api/internal/repository"
	"github.com/saad710/shop-api/internal/service"
	"github.com/saad710/shop-api/internal/upload"
	_ "github.com/saad710/shop-api/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	api.SetupGlobalHandler("shop-api")

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations(cfg)
		return
	}

	db := connectDB(cfg)
	defer db.Close()

	var publisher events.Publisher
	publisher, err = events.NewNatsPublisher(cfg.NatsURL)
	if err != nil {
		log.Printf("WARNING: Failed to connect to NATS, events will be dropped: %v", err)
		publisher = events.NoopPublisher{}
	}

	userRepo := repository.NewPostgresUserRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	productRepo := repository.NewPostgresProductRepository(db)
	orderRepo := repository.NewPostgresOrderRepository(db)

	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	uploads := upload.NewSaver(cfg.UploadDir)

	authService := service.NewAuthService(userRepo, tokens, publisher)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, publisher)

	authHandler := api.NewAuthHandler(authService, uploads)
	userHandler := api.NewUserHandler(userService, uploads)
	categoryHandler := api.NewCategoryHandler(categoryService)
	productHandler := api.NewProductHandler(productService, uploads)
	orderHandler := api.NewOrderHandler(orderService)

	gate := api.NewAccessGate(tokens, userRepo)

	app := fiber.New()
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "shop-api"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/uploads", cfg.UploadDir)

	root := app.Group("/api")

	auth := root.Group("/auth")
	auth.Post("/register", api.ParseAndValidate[api.RegisterRequest](fiber.StatusBadRequest), authHandler.Register)
	auth.Post("/login", api.ParseAndValidate[api.LoginRequest](fiber.StatusBadRequest), authHandler.Login)

	user := root.Group("/user")
	user.Get("/details", gate.Authenticate(), userHandler.Details)
	user.Put("/change-password/:id",
		gate.Authenticate(), gate.SelfOrAdmin("id"),
		api.ParseAndValidate[api.ChangePasswordRequest](fiber.StatusBadRequest),
		userHandler.ChangePassword)
	user.Put("/:id",
		gate.Authenticate(), gate.SelfOrAdmin("id"),
		api.ParseAndValidate[api.UpdateUserRequest](fiber.StatusBadRequest),
		userHandler.Update)

	category := root.Group("/category")
	category.Get("/", categoryHandler.List)
	category.Post("/",
		gate.Authenticate(), gate.AdminOnly(),
		api.ParseAndValidate[api.CategoryRequest](fiber.StatusBadRequest),
		categoryHandler.Create)
	category.Put("/:id",
		gate.Authenticate(), gate.AdminOnly(),
		api.ParseAndValidate[api.CategoryRequest](fiber.StatusBadRequest),
		categoryHandler.Update)
	category.Delete("/:id", gate.Authenticate(), gate.AdminOnly(), categoryHandler.Delete)

	product := root.Group("/product")
	product.Post("/",
		gate.Authenticate(), gate.AdminOnly(),
		api.ParseAndValidate[api.ProductRequest](fiber.StatusUnprocessableEntity),
		productHandler.Create)
	product.Put("/:id",
		gate.Authenticate(), gate.AdminOnly(),
		api.ParseAndValidate[api.ProductRequest](fiber.StatusUnprocessableEntity),
		productHandler.Update)
	product.Get("/:id", gate.Authenticate(), productHandler.Get)
	product.Delete("/:id", gate.Authenticate(), gate.AdminOnly(), productHandler.Delete)

	order := root.Group("/order")
	order.Post("/",
		gate.Authenticate(),
		api.ParseAndValidate[api.CreateOrderRequest](fiber.StatusBadRequest),
		orderHandler.Create)
	order.Get("/find/:userId", gate.Authenticate(), gate.SelfOrAdmin("userId"), orderHandler.FindByUser)
	order.Get("/", gate.Authenticate(), gate.AdminOnly(), orderHandler.List)
	order.Put("/:id",
		gate.Authenticate(), gate.AdminOnly(),
		api.ParseAndValidate[api.UpdateOrderRequest](fiber.StatusBadRequest),
		orderHandler.Update)
	order.Delete("/:id", gate.Authenticate(), gate.AdminOnly(), orderHandler.Delete)

	log.Printf("Listening shop-api on port %s", cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func connectDB(cfg *config.Config) *sqlx.DB {
	db, err := sqlx.Connect("pgx", cfg.DB.URL())
	if err != nil {
		log.Fatalf("Failed connect to database: %v", err)
	}
	log.Println("Database connected.")
	return db
}

func handleMigrations(cfg *config.Config) {
	db, err := sql.Open("pgx", cfg.DB.URL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
