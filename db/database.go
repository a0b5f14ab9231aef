package db

import (
	"fmt"
	"log"

	"github.com/venturemate/marketplace-go/config"
	"github.com/venturemate/marketplace-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Entrepreneur{},
		&models.Student{},
		&models.Project{},
		&models.Proposal{},
		&models.ProposedStudent{},
		&models.MessageGroup{},
		&models.GroupMember{},
		&models.Message{},
		&models.Document{},
		&models.Service{},
		&models.Pack{},
		&models.AuditLog{},
	)
}

// InitWithGormDB swaps in an externally constructed DB (integration tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
