package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "hrms_backend/internals/features/employees/attendance/model"
	employeeModel "hrms_backend/internals/features/employees/employee/model"
	adminModel "hrms_backend/internals/features/users/auth/model"
)

// ConnectDB opens the PostgreSQL pool. The handle is returned, not stashed
// in a package global: callers inject it into every controller.
func ConnectDB() (*gorm.DB, error) {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hrms&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 plays well with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("✅ DB connected.")
	return db, nil
}

// TunePool keeps connection scope per request: short-lived handles, no leaks.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("⚠️ Could not access sql.DB for pool tuning: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate creates tables plus the constraints that carry the invariants:
// unique employee email, unique (employee, date) attendance pair, and the
// FK with ON DELETE CASCADE.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminModel.AdminModel{},
		&employeeModel.EmployeeModel{},
		&attendanceModel.AttendanceModel{},
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
