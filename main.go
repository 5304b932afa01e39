package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed db/migrations/*.sql
var migrationsFS embed.FS

var (
	dbPool    *pgxpool.Pool
	queries   *Queries
	logger    *logrus.Logger
	jwtSecret string
)

// @title shopbooks API
// @version 1.0
// @description Small-business accounting backend: contacts, ledgers, transactions, tags, expenditures.
// @BasePath /
func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	jwtSecret = getEnvOrDefault("JWT_SECRET", "")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	connStr := buildConnString()

	// Connect to database with retry logic
	maxRetries := 30
	retryInterval := time.Second * 2

	for i := 0; i < maxRetries; i++ {
		dbPool, err = pgxpool.New(context.Background(), connStr)
		if err != nil {
			logger.Warnf("Attempt %d: error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = dbPool.Ping(context.Background()); err != nil {
			logger.Warnf("Attempt %d: error connecting to database: %v", i+1, err)
			dbPool.Close()
			time.Sleep(retryInterval)
			continue
		}

		logger.Info("Successfully connected to database")
		break
	}
	if err != nil {
		logger.Fatalf("Failed to connect to database after retries: %v", err)
	}
	defer dbPool.Close()

	logger.Info("Running database migrations...")
	if err := runMigrations(connStr); err != nil {
		logger.Fatalf("Error running migrations: %v", err)
	}
	logger.Info("Database migrations completed successfully")

	queries = NewQueries(dbPool)

	r := setupRouter()

	port := getEnvOrDefault("PORT", "8080")
	logger.Infof("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}

// buildConnString assembles the Postgres connection string from the environment
func buildConnString() string {
	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "shopbooks")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)
}

// runMigrations applies the embedded schema migrations. A separate
// database/sql connection is used so the pgx pool is never disturbed.
func runMigrations(connStr string) error {
	migrateDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "db/migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// setupRouter wires middleware and all routes
func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger UI; run swag init to generate the doc.json it serves
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", register)
	api.POST("/auth/login", login)

	// Everything else requires a bearer token
	authed := api.Group("", requireAuth())

	accounting := authed.Group("/accounting")
	accounting.GET("/summary", getAccountingSummary)
	accounting.GET("/accounts", listAccounts)
	accounting.POST("/get-account", getOrCreateAccount)
	accounting.PUT("/accounts/:id", updateAccount)
	accounting.DELETE("/accounts/:id", requireAdmin(), deleteAccount)
	accounting.GET("/ledger/:accountId", getLedger)
	accounting.POST("/transaction", createTransaction)
	accounting.PUT("/transaction/:id", updateTransaction)
	accounting.DELETE("/transaction/:id", deleteTransaction)
	accounting.GET("/tags", listTags)
	accounting.POST("/tags", createTag)
	accounting.DELETE("/tags/:id", deleteTag)

	authed.GET("/contacts", listContacts)
	authed.POST("/contacts", createContact)
	authed.GET("/contacts/:id", getContact)
	authed.PUT("/contacts/:id", updateContact)
	authed.DELETE("/contacts/:id", requireAdmin(), deleteContact)

	authed.GET("/expenditures", listExpenditures)
	authed.POST("/expenditures", createExpenditure)
	authed.PUT("/expenditures/:id", updateExpenditure)
	authed.DELETE("/expenditures/:id", deleteExpenditure)

	return r
}

// getEnvOrDefault reads an environment variable with a fallback
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
