package models

// Cart is one transient row of a user's cart. Price is always
// UnitPrice * Quantity; all of a user's rows are deleted on checkout.
type Cart struct {
	ID         uint     `gorm:"primaryKey" json:"-"`
	UserID     uint     `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"-"`
	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"-"`
	MenuItem   MenuItem `json:"menuitem"`
	UnitPrice  float64  `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	Price      float64  `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (Cart) TableName() string {
	return "carts"
}
