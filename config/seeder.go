package config

import (
	"context"
	"errors"
	"log"

	"guitar_square_backend/models"
	"guitar_square_backend/store"
)

// SeedCategories inserts the fixed category list once. Categories are
// immutable after seeding and read-only from the API.
func SeedCategories(ctx context.Context, st store.Store) error {
	log.Println("🌱 Seeding categories...")

	categories := []models.Category{
		{Name: "Acoustic Guitar", Slug: "acoustic-guitar"},
		{Name: "Electric Guitar", Slug: "electric-guitar"},
		{Name: "Bass Guitar", Slug: "bass-guitar"},
		{Name: "Classical Guitar", Slug: "classical-guitar"},
		{Name: "Ukulele", Slug: "ukulele"},
	}

	for i := range categories {
		category := categories[i]
		if _, err := st.CategoryByName(ctx, category.Name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := st.InsertCategory(ctx, &category); err != nil {
			log.Printf("Failed to seed category %s: %v", category.Name, err)
			return err
		}
		log.Printf("Category seeded: %s", category.Name)
	}

	log.Println("✅ Seeding complete.")
	return nil
}
