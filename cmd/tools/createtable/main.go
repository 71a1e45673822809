// createtable migrates the schema and seeds a minimal demo dataset:
// roles, one user per role, and a couple of published products with SKUs.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/cart"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/users"
)

func main() {
	seed := flag.Bool("seed", true, "seed demo data after migrating")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&users.Role{},
		&users.User{},
		&products.Product{},
		&products.ProductTranslation{},
		&products.SKU{},
		&cart.CartItem{},
		&payments.Payment{},
		&payments.PaymentTransaction{},
		&orders.Order{},
		&orders.ProductSKUSnapshot{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	log.Println("schema migrated")

	if !*seed {
		return
	}
	if err := seedDemo(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("demo data seeded")
}

func seedDemo(db *gorm.DB) error {
	roles := map[string]*users.Role{}
	for _, name := range []string{users.RoleAdmin, users.RoleSeller, users.RoleClient} {
		r := users.Role{Name: name}
		if err := db.FirstOrCreate(&r, users.Role{Name: name}).Error; err != nil {
			return err
		}
		roles[name] = &r
	}

	mkUser := func(email, name, role string) (*users.User, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u := users.User{Email: email, Name: name, Password: string(hash), RoleID: roles[role].ID}
		if err := db.FirstOrCreate(&u, users.User{Email: email}).Error; err != nil {
			return nil, err
		}
		return &u, nil
	}

	if _, err := mkUser("admin@example.com", "Admin", users.RoleAdmin); err != nil {
		return err
	}
	seller, err := mkUser("seller@example.com", "Demo Shop", users.RoleSeller)
	if err != nil {
		return err
	}
	if _, err := mkUser("buyer@example.com", "Buyer", users.RoleClient); err != nil {
		return err
	}

	now := time.Now()
	demo := []struct {
		name  string
		price int64
		skus  []products.SKU
	}{
		{
			name: "Basic Tee", price: 150000,
			skus: []products.SKU{
				{Value: "Black / M", Price: 150000, Stock: 100, Image: "https://cdn.example.com/tee-black.jpg"},
				{Value: "White / L", Price: 155000, Stock: 80, Image: "https://cdn.example.com/tee-white.jpg"},
			},
		},
		{
			name: "Canvas Tote", price: 90000,
			skus: []products.SKU{
				{Value: "Natural", Price: 90000, Stock: 50, Image: "https://cdn.example.com/tote.jpg"},
			},
		},
	}

	for _, d := range demo {
		p := products.Product{
			Name:        d.name,
			BasePrice:   d.price,
			CreatedByID: seller.ID,
			PublishedAt: &now,
		}
		if err := db.FirstOrCreate(&p, products.Product{Name: d.name, CreatedByID: seller.ID}).Error; err != nil {
			return err
		}
		tr := products.ProductTranslation{
			ProductID: p.ID, LanguageID: "en", Name: d.name, Description: d.name + " (demo)",
		}
		if err := db.FirstOrCreate(&tr, products.ProductTranslation{ProductID: p.ID, LanguageID: "en"}).Error; err != nil {
			return err
		}
		for _, s := range d.skus {
			s.ProductID = p.ID
			s.CreatedByID = seller.ID
			if err := db.FirstOrCreate(&s, products.SKU{ProductID: p.ID, Value: s.Value}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
