package models

// Category is one entry of the global expense-category taxonomy. The table
// is seeded by cmd/seed and treated as external configuration; the ledger
// only validates expense drafts against its keys.
type Category struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Label string `gorm:"not null" json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
