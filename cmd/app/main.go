package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Emagjby/LogiPack/cmd"
	httpin "github.com/Emagjby/LogiPack/internal/adapters/in/http"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/clientrepo"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/employeerepo"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/eventstore"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/officerepo"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/shipmentrepo"
	"github.com/Emagjby/LogiPack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateListStreamsQueryHandler(),
		app.CreateVerifyStreamQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AuthSecret: goDotEnvVariable("AUTH_SECRET"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&eventstore.StreamDTO{},
		&eventstore.PackageDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryDTO{},
		&clientrepo.ClientDTO{},
		&officerepo.OfficeDTO{},
		&employeerepo.EmployeeDTO{},
		&employeerepo.EmployeeOfficeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(httpin.Handlers{
		CreateShipment:       app.CreateCreateShipmentCommandHandler(),
		ChangeShipmentStatus: app.CreateChangeShipmentStatusCommandHandler(),
		CreateClient:         app.CreateCreateClientCommandHandler(),
		UpdateClient:         app.CreateUpdateClientCommandHandler(),
		DeleteClient:         app.CreateDeleteClientCommandHandler(),
		CreateOffice:         app.CreateCreateOfficeCommandHandler(),
		UpdateOffice:         app.CreateUpdateOfficeCommandHandler(),
		DeleteOffice:         app.CreateDeleteOfficeCommandHandler(),
		CreateEmployee:       app.CreateCreateEmployeeCommandHandler(),
		UpdateEmployee:       app.CreateUpdateEmployeeCommandHandler(),
		DeleteEmployee:       app.CreateDeleteEmployeeCommandHandler(),
		AssignEmployeeOffice: app.CreateAssignEmployeeOfficeCommandHandler(),
		RemoveEmployeeOffice: app.CreateRemoveEmployeeOfficeCommandHandler(),
		GetShipment:          app.CreateGetShipmentQueryHandler(),
		ListShipments:        app.CreateListShipmentsQueryHandler(),
		GetShipmentHistory:   app.CreateGetShipmentHistoryQueryHandler(),
		GetShipmentTimeline:  app.CreateGetShipmentTimelineQueryHandler(),
		VerifyStream:         app.CreateVerifyStreamQueryHandler(),
		ListClients:          app.CreateListClientsQueryHandler(),
		ListOffices:          app.CreateListOfficesQueryHandler(),
		ListEmployees:        app.CreateListEmployeesQueryHandler(),
		ListEmployeeOffices:  app.CreateListEmployeeOfficesQueryHandler(),
	})

	auth := httpin.NewAuthMiddleware(configs.AuthSecret, app.CreateListEmployeeOfficesQueryHandler())

	e := echo.New()
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
