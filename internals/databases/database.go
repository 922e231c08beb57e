package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	activityModel "societyhub_backend/internals/features/activity/logs/model"
	bookingModel "societyhub_backend/internals/features/amenity/bookings/model"
	alertModel "societyhub_backend/internals/features/community/alerts/model"
	complaintModel "societyhub_backend/internals/features/community/complaints/model"
	eventModel "societyhub_backend/internals/features/community/events/model"
	billModel "societyhub_backend/internals/features/finance/bills/model"
	expenseModel "societyhub_backend/internals/features/finance/expenses/model"
	visitorModel "societyhub_backend/internals/features/security/visitors/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
	towerModel "societyhub_backend/internals/features/society/towers/model"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=societyhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}
	DB = db
	log.Println("DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the row store's schema (and its unique indexes, which back the
// duplicate-cycle and slot-triple invariants) in sync at startup.
func Migrate() {
	if err := DB.AutoMigrate(
		&towerModel.TowerModel{},
		&flatModel.FlatModel{},
		&billModel.BillingCycleModel{},
		&billModel.BillModel{},
		&complaintModel.ComplaintModel{},
		&alertModel.AlertModel{},
		&eventModel.EventModel{},
		&bookingModel.BookingModel{},
		&visitorModel.VisitorModel{},
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&activityModel.ActivityLogModel{},
		&expenseModel.ExpenseModel{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
