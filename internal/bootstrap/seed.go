package bootstrap

import (
	"log"

	"github.com/robokitlab/catalog-api/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Tag{},
		&model.Product{},
		&model.ProductSection{},
		&model.ProductTag{},
		&model.Faq{},
		&model.MediaYoutube{},
		&model.MediaImage{},
		&model.DownloadPdf{},
		&model.CadEmbed{},
		&model.Model3d{},
		&model.Guide{},
		&model.GuideLink{},
		&model.Lesson{},
		&model.LessonLink{},
		&model.UserProfile{},
		&model.ContactSubmission{},
	)
}

func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.UserProfile{}).
		Where("email = ?", "admin@robokit.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.UserProfile{
		Email:        "admin@robokit.local",
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeded development admin user admin@robokit.local")
	return nil
}
