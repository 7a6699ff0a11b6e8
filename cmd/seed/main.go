package main

import (
	"log"
	"os"

	"sneakers-store-be/internal/model"
	"sneakers-store-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

var defaultSizes = datatypes.JSON([]byte(`["38","39","40","41","42","43","44"]`))

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Sneakers Store catalog...")

	products := []model.Product{
		{Name: "Nike Air Max 90", Brand: "Nike", Price: 129.99, Image: "/images/nike-air-max-90.jpg", Stock: 25, Category: "running", Sizes: defaultSizes},
		{Name: "Nike Air Force 1", Brand: "Nike", Price: 109.99, Image: "/images/nike-air-force-1.jpg", Stock: 30, Category: "lifestyle", Sizes: defaultSizes},
		{Name: "Adidas Ultraboost 22", Brand: "Adidas", Price: 179.99, Image: "/images/adidas-ultraboost-22.jpg", Stock: 18, Category: "running", Sizes: defaultSizes},
		{Name: "Adidas Stan Smith", Brand: "Adidas", Price: 89.99, Image: "/images/adidas-stan-smith.jpg", Stock: 40, Category: "lifestyle", Sizes: defaultSizes},
		{Name: "Puma RS-X", Brand: "Puma", Price: 99.99, Image: "/images/puma-rs-x.jpg", Stock: 22, Category: "lifestyle", Sizes: defaultSizes},
		{Name: "Puma Suede Classic", Brand: "Puma", Price: 74.99, Image: "/images/puma-suede-classic.jpg", Stock: 35, Category: "lifestyle", Sizes: defaultSizes},
		{Name: "New Balance 574", Brand: "New Balance", Price: 84.99, Image: "/images/new-balance-574.jpg", Stock: 28, Category: "lifestyle", Sizes: defaultSizes},
		{Name: "New Balance 990v5", Brand: "New Balance", Price: 184.99, Image: "/images/new-balance-990v5.jpg", Stock: 12, Category: "running", Sizes: defaultSizes},
	}

	for _, p := range products {
		var existing model.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			color.Yellow("Product '%s' already exists, skipping...", p.Name)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating product '%s': %v", p.Name, err)
		} else {
			color.Green("Created product: %s ($%.2f)", p.Name, p.Price)
		}
	}

	color.Cyan("Seeding admin account...")

	var existingAdmin model.User
	if err := db.Where("username = ?", "admin").First(&existingAdmin).Error; err == nil {
		color.Yellow("Admin user already exists, skipping...")
	} else {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
			color.Yellow("SEED_ADMIN_PASSWORD not set, using default dev password")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing admin password: %v", err)
		}

		admin := model.User{
			Username:     "admin",
			Email:        "admin@sneakersstore.local",
			PasswordHash: string(hash),
			Role:         "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			color.Red("Error creating admin user: %v", err)
		} else {
			color.Green("Created admin user: %s", admin.Username)
		}
	}

	color.Cyan("Seeding completed!")
}
