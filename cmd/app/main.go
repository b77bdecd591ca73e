package main

import (
	"fmt"
	"log/slog"
	"os"

	"repairshop/cmd"
	httpin "repairshop/internal/adapters/in/http"
	"repairshop/internal/adapters/out/postgres/codegen"
	"repairshop/internal/adapters/out/postgres/orderrepo"
	"repairshop/internal/adapters/out/postgres/outboxrepo"
	"repairshop/internal/adapters/out/postgres/staffrepo"
	"repairshop/internal/adapters/out/rabbitmq"
	"repairshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)
	mustMigrate(db)

	notifier, err := rabbitmq.Connect(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer notifier.Close()

	app := cmd.NewCompositionRoot(configs, db, notifier, logger)

	jobManager := jobs.NewJobManager(app.CreateOutboxRepository(), notifier, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&staffrepo.StaffDTO{},
		&outboxrepo.OutboxMessageDTO{},
		&codegen.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateMoveOrderToSectorCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateStaffCommandHandler(),
		app.CreateGetOrdersBoardQueryHandler(),
		app.CreateGetSectorStatisticsQueryHandler(),
		app.CreateGetStatusColumnsQueryHandler(),
		app.CreateGetAdjacentSectorsQueryHandler(),
		app.CreateGetAllStaffQueryHandler(),
		app.Catalog(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
