package models

// Category groups menu items for browsing and filtering.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(100);uniqueIndex;not null" json:"title"`
	Slug  string `gorm:"type:varchar(100)" json:"slug"`
}

func (Category) TableName() string {
	return "categories"
}

// MenuItem is a purchasable dish belonging to one category.
type MenuItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Title      string   `gorm:"type:varchar(150);uniqueIndex;not null" json:"title"`
	Price      float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	Featured   bool     `gorm:"not null;default:false" json:"featured"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `json:"category"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
