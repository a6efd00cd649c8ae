// Command seed loads the expense-category taxonomy into the database.
// Safe to run repeatedly: existing categories are updated in place.
package main

import (
	"log"

	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

var categories = []models.Category{
	{Key: "groceries", Label: "Groceries", Icon: "shopping-cart", Color: "#4B7BE5"},
	{Key: "rent", Label: "Rent", Icon: "house", Color: "#075985"},
	{Key: "utilities", Label: "Utilities", Icon: "lightbulb", Color: "#ca8a04"},
	{Key: "transportation", Label: "Transportation", Icon: "car", Color: "#b45309"},
	{Key: "entertainment", Label: "Entertainment", Icon: "film-strip", Color: "#0f766e"},
	{Key: "dining", Label: "Dining", Icon: "fork-knife", Color: "#be185d"},
	{Key: "health", Label: "Health", Icon: "heart", Color: "#e11d48"},
	{Key: "insurance", Label: "Insurance", Icon: "shield-check", Color: "#404040"},
	{Key: "savings", Label: "Savings", Icon: "piggy-bank", Color: "#065f46"},
	{Key: "clothing", Label: "Clothing", Icon: "t-shirt", Color: "#7c3aed"},
	{Key: "personal", Label: "Personal", Icon: "user", Color: "#a21caf"},
	{Key: "others", Label: "Others", Icon: "dots-three-outline", Color: "#525252"},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	repo := repositories.NewCategoryRepository(repositories.DB)
	for _, category := range categories {
		c := category
		if err := repo.Upsert(&c); err != nil {
			log.Fatalf("failed to seed category %q: %v", c.Key, err)
		}
	}
	log.Printf("seeded %d categories", len(categories))
}
