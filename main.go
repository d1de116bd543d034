package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewtrack/timeline-backend/api"
	"github.com/crewtrack/timeline-backend/config"
	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/models"
	"github.com/crewtrack/timeline-backend/seed"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	gormConfig := &gorm.Config{Logger: gormLogger}

	// Backend selection is connection-string driven: postgres for
	// deployments, sqlite for development and single-host installs.
	dbType := config.GetString(c, "DB_TYPE", "sqlite")
	var db *gorm.DB
	var err error
	switch dbType {
	case "postgres":
		fmt.Println("Connecting to postgres database...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.PostgresDSN(c),
			PreferSimpleProtocol: true,
		}), gormConfig)
	case "sqlite":
		path := config.SQLitePath(c)
		fmt.Printf("Opening sqlite database at %s...\n", path)
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	default:
		fmt.Printf("Unsupported DB_TYPE %q. Exiting...\n", dbType)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.Project{},
		&models.Task{},
		&models.Holiday{},
		&models.Foreman{},
		&models.TaskForeman{},
		&models.TaskTemplate{},
	); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Seed the task-template catalog when a seed file is configured.
	if seedFile := config.GetString(c, "TEMPLATE_SEED_FILE", ""); seedFile != "" {
		if err := seed.ApplyTemplates(currentDB, seedFile, zlog.Logger); err != nil {
			fmt.Printf("Error seeding task templates: %v\n", err)
			os.Exit(1)
		}
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
