package configs

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

// SeedAdmin creates the first admin from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		logger.Info("admin already exists", zap.String("email", cfg.AdminEmail))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedDemoData loads the demo restaurant, menu and tables. Idempotent;
// only called when APP_ENV=development.
func SeedDemoData(db *gorm.DB, logger *zap.Logger) error {
	restaurant := entity.Restaurant{Name: "Cafe Delight", Slug: "cafe-delight"}
	if err := db.Where(entity.Restaurant{Slug: restaurant.Slug}).
		FirstOrCreate(&restaurant).Error; err != nil {
		return err
	}

	categories := map[string]*entity.MenuCategory{}
	for i, name := range []string{"Coffee", "Tea", "Cold Drinks"} {
		cat := entity.MenuCategory{
			Name:         name,
			DisplayOrder: i,
			Active:       true,
			RestaurantID: &restaurant.ID,
		}
		if err := db.Where(entity.MenuCategory{Name: name, RestaurantID: &restaurant.ID}).
			FirstOrCreate(&cat).Error; err != nil {
			return err
		}
		categories[name] = &cat
	}

	items := []struct {
		name     string
		price    int64
		category string
	}{
		{"Espresso", 100, "Coffee"},
		{"Cappuccino", 120, "Coffee"},
		{"Green Tea", 80, "Tea"},
		{"Black Tea", 70, "Tea"},
		{"Cold Coffee", 150, "Cold Drinks"},
	}
	for _, it := range items {
		item := entity.MenuItem{
			Name:       it.name,
			Price:      it.price,
			Active:     true,
			CategoryID: categories[it.category].ID,
		}
		if err := db.Where(entity.MenuItem{Name: it.name, CategoryID: item.CategoryID}).
			FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}

	for n := 1; n <= 4; n++ {
		table := entity.Table{
			Number: n,
			QRSlug: fmt.Sprintf("table-%d", n),
			Seats:  4,
			Status: entity.TableAvailable,
			Active: true,
		}
		if err := db.Where(entity.Table{Number: n}).FirstOrCreate(&table).Error; err != nil {
			return err
		}
	}

	logger.Info("demo data seeded")
	return nil
}
