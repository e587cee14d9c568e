package database

import (
	"fmt"
	"log"

	config "github.com/anjiri1684/tutor_crm/configs"
	"github.com/anjiri1684/tutor_crm/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Lesson{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin promotes the configured account to the admin role. Accounts are
// normally created by the identity webhook with the teacher role, and the
// admin assignment happens out of band, so this runs as an upsert on boot.
func SeedAdmin() {
	adminID := config.Config("ADMIN_USER_ID")
	adminEmail := config.Config("ADMIN_EMAIL")

	if adminID == "" {
		log.Println("ADMIN_USER_ID not set, skipping admin seed")
		return
	}

	var admin models.User
	err := DB.Where("id = ?", adminID).First(&admin).Error
	if err == nil {
		if admin.Role != models.RoleAdmin {
			if err := DB.Model(&admin).Update("role", models.RoleAdmin).Error; err != nil {
				log.Fatalf("🔥 Failed to promote admin user: %v", err)
			}
		}
		log.Println("Admin user already exists.")
		return
	}

	admin = models.User{
		ID:    adminID,
		Email: adminEmail,
		Role:  models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}
