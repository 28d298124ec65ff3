package main

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rental-portal/internal/config"
	"rental-portal/internal/database"
	"rental-portal/internal/handlers"
)

func main() {
	// .env is optional; environment wins over config-file values below
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/rental_portal.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}
	applyEnvOverrides(appConfig)

	db, err := database.New(&appConfig.Database, appConfig.Logging.LogQueries)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Printf("Schema ready (%s)", appConfig.Database.Type)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.LoadHTMLGlob(appConfig.Server.TemplateGlob)

	// Property screens
	propertyHandler := handlers.NewPropertyHandler(db)
	propertyHandler.RegisterRoutes(r)

	// Administrative record browser
	adminHandler := handlers.NewAdminHandler(db)
	adminHandler.RegisterRoutes(r.Group("/api/admin"))
	log.Println("Admin record browser registered at /api/admin/*")

	addr := appConfig.Server.Addr()
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// applyEnvOverrides lets connection settings come from the environment, which
// wins over the config file
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.Database.Type = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.MySQL.Host = v
		cfg.Database.Postgres.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.MySQL.Port = port
			cfg.Database.Postgres.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.MySQL.User = v
		cfg.Database.Postgres.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.MySQL.Password = v
		cfg.Database.Postgres.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.MySQL.Database = v
		cfg.Database.Postgres.Database = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.SQLite.Path = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
