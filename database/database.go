package database

import (
	"fmt"
	"log"

	config "github.com/hamzaiqbal08/committee_fund/configs"
	"github.com/hamzaiqbal08/committee_fund/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Committee{},
		&models.Membership{},
		&models.Contribution{},
		&models.Payout{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedOrganizer bootstraps the first organizer account. The is_organizer flag
// is never settable through the API, so a fresh deployment needs one seeded.
func SeedOrganizer() {
	organizerEmail := config.Config("ORGANIZER_EMAIL")
	organizerPassword := config.Config("ORGANIZER_PASSWORD")

	if organizerEmail == "" || organizerPassword == "" {
		log.Println("⚠️ ORGANIZER_EMAIL / ORGANIZER_PASSWORD not set, skipping organizer seed")
		return
	}

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", organizerEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for organizer user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Organizer user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(organizerPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash organizer password: %v", err)
		return
	}

	organizer := models.User{
		FirstName:   config.Config("ORGANIZER_FIRST_NAME"),
		LastName:    config.Config("ORGANIZER_LAST_NAME"),
		Email:       organizerEmail,
		Password:    string(hashedPassword),
		IsOrganizer: true,
	}

	if err := DB.Create(&organizer).Error; err != nil {
		log.Fatalf("🔥 Failed to seed organizer user: %v", err)
		return
	}

	log.Println("✅ Organizer user seeded successfully")
}
