package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/croshet/storefront-api/config"
	"github.com/croshet/storefront-api/pkg/helpers"
)

type seedProduct struct {
	name        string
	description string
	priceCents  int64
	category    string
	stock       int
	imageURL    string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@croshet.shop"
	password := "admin12345"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (full_name, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, 'admin')
		ON CONFLICT (email) DO UPDATE SET role = 'admin'
		RETURNING id
	`, "Shop Admin", "croshet_admin", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	products := []seedProduct{
		{"Sunflower Tote Bag", "Hand-crocheted cotton tote with a sunflower motif", 89900, "bags", 12, ""},
		{"Daisy Bucket Hat", "Soft bucket hat with appliqued daisies", 64900, "hats", 20, ""},
		{"Tulip Keychain", "Mini crochet tulip on a brass ring", 14900, "accessories", 50, ""},
		{"Amigurumi Bear", "Palm-sized stuffed bear in oat-colored yarn", 49900, "toys", 8, ""},
		{"Scallop Cardigan", "Cropped cardigan with scallop trim, made to order", 189900, "apparel", 3, ""},
	}
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (name, description, price_cents, currency, category, stock, image_url)
			VALUES ($1, $2, $3, 'PHP', $4, $5, $6)
			ON CONFLICT (name) DO UPDATE SET
				description = EXCLUDED.description,
				price_cents = EXCLUDED.price_cents,
				category    = EXCLUDED.category,
				stock       = EXCLUDED.stock,
				updated_at  = now()
		`, p.name, p.description, p.priceCents, p.category, p.stock, p.imageURL); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d products\n", len(products))
}
