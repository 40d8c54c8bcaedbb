package configs

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

// SeedAdmin creates the back-office admin on first start.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Str("username", cfg.AdminUsername).Msg("admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("admin user seeded")
	return nil
}

// SeedCatalog loads the starter categories, products and testimonials.
// Idempotent: rows are matched by name before insert.
func SeedCatalog(db *gorm.DB) error {
	categories := []entity.Category{
		{Name: "Main Course", Description: "Hearty and filling dishes that form the core of traditional Indian meals"},
		{Name: "Appetizers", Description: "Small, flavorful dishes to start your meal"},
		{Name: "Desserts", Description: "Sweet treats to complete your Indian dining experience"},
		{Name: "Vegan Options", Description: "Plant-based dishes full of traditional Indian flavors"},
		{Name: "Beverages", Description: "Traditional and refreshing Indian drinks"},
		{Name: "Party Platters", Description: "Large sharing portions perfect for celebrations and events"},
	}
	byName := map[string]uint{}
	for i := range categories {
		if err := db.Where(entity.Category{Name: categories[i].Name}).
			Attrs(entity.Category{Description: categories[i].Description}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
		byName[categories[i].Name] = categories[i].ID
	}

	products := []entity.Product{
		{
			Name:        "Butter Chicken",
			Description: "Tender chicken pieces marinated and cooked in a creamy tomato sauce with aromatic spices.",
			Price:       decimal.RequireFromString("450.00"),
			ImageURL:    "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?auto=format&fit=crop&w=600&h=400",
			ServingSize: "2-3",
			CategoryID:  byName["Main Course"],
		},
		{
			Name:        "Paneer Tikka",
			Description: "Marinated cottage cheese cubes grilled with bell peppers, onions, and traditional spices.",
			Price:       decimal.RequireFromString("380.00"),
			ImageURL:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&w=600&h=400",
			ServingSize: "2-3",
			CategoryID:  byName["Appetizers"],
		},
		{
			Name:        "Vegetable Biryani",
			Description: "Fragrant basmati rice cooked with mixed vegetables and aromatic spices, garnished with fried onions.",
			Price:       decimal.RequireFromString("320.00"),
			ImageURL:    "https://images.unsplash.com/photo-1589302168068-964664d93dc0?auto=format&fit=crop&w=600&h=400",
			ServingSize: "3-4",
			CategoryID:  byName["Main Course"],
		},
		{
			Name:        "Assorted Naan Bread",
			Description: "Freshly baked naan bread in various flavors: plain, garlic, butter, and cheese.",
			Price:       decimal.RequireFromString("180.00"),
			ImageURL:    "https://images.unsplash.com/photo-1601050690597-df0568f70950?auto=format&fit=crop&w=600&h=400",
			ServingSize: "2-3",
			CategoryID:  byName["Appetizers"],
		},
		{
			Name:        "Dal Makhani",
			Description: "Black lentils and kidney beans slow-cooked with butter, cream, and a blend of traditional spices.",
			Price:       decimal.RequireFromString("280.00"),
			ImageURL:    "https://images.unsplash.com/photo-1546833998-877b37c2e5c6?auto=format&fit=crop&w=600&h=400",
			ServingSize: "2-3",
			CategoryID:  byName["Main Course"],
		},
		{
			Name:        "Chana Masala",
			Description: "Chickpeas cooked in a spicy tomato-based sauce with traditional spices and herbs.",
			Price:       decimal.RequireFromString("260.00"),
			ImageURL:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&w=600&h=400",
			ServingSize: "2-3",
			CategoryID:  byName["Vegan Options"],
		},
		{
			Name:        "Mango Lassi",
			Description: "A refreshing yogurt-based drink blended with sweet mango pulp and a hint of cardamom.",
			Price:       decimal.RequireFromString("120.00"),
			ImageURL:    "https://images.unsplash.com/photo-1527661591475-527312dd65f5?auto=format&fit=crop&w=600&h=400",
			ServingSize: "1",
			CategoryID:  byName["Beverages"],
		},
		{
			Name:        "Family Feast Platter",
			Description: "An assortment of popular dishes including butter chicken, paneer tikka, vegetable biryani, and naan bread.",
			Price:       decimal.RequireFromString("1200.00"),
			ImageURL:    "https://images.unsplash.com/photo-1505253758473-96b7015fcd40?auto=format&fit=crop&w=600&h=400",
			ServingSize: "5-6",
			CategoryID:  byName["Party Platters"],
		},
	}
	for i := range products {
		var count int64
		if err := db.Model(&entity.Product{}).Where("name = ?", products[i].Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	testimonials := []entity.Testimonial{
		{
			Name:      "Priya Sharma",
			AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=100&h=100",
			Rating:    decimal.RequireFromString("5.0"),
			Comment:   "The food was absolutely amazing! Everything was fresh and flavorful. Our guests couldn't stop talking about how delicious the butter chicken and naan were.",
			EventType: "Wedding Reception",
			IsVisible: true,
		},
		{
			Name:      "Rajiv Patel",
			AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=100&h=100",
			Rating:    decimal.RequireFromString("5.0"),
			Comment:   "They catered our corporate event, and the service was impeccable. The food presentation was beautiful, and they accommodated all our dietary requirements.",
			EventType: "Corporate Event",
			IsVisible: true,
		},
		{
			Name:      "Anita Desai",
			AvatarURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=100&h=100",
			Rating:    decimal.RequireFromString("4.5"),
			Comment:   "We ordered for a family gathering, and everyone was impressed with the variety and quality. The vegetarian options were particularly outstanding, with authentic flavors.",
			EventType: "Family Gathering",
			IsVisible: true,
		},
	}
	for i := range testimonials {
		var count int64
		if err := db.Model(&entity.Testimonial{}).
			Where("name = ? AND event_type = ?", testimonials[i].Name, testimonials[i].EventType).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&testimonials[i]).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("catalog seeded")
	return nil
}
