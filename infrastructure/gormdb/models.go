package gormdb

type customerModel struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name;not null"`
	Street       *string `gorm:"column:street"`
	Number       *int    `gorm:"column:number"`
	Zipcode      *string `gorm:"column:zipcode"`
	City         *string `gorm:"column:city"`
	Active       bool    `gorm:"column:active;not null"`
	RewardPoints int     `gorm:"column:reward_points;not null"`
}

type productModel struct {
	ID    string  `gorm:"column:id;primaryKey"`
	Type  string  `gorm:"column:type;not null"`
	Name  string  `gorm:"column:name;not null"`
	Price float64 `gorm:"column:price;not null"`
}

type orderModel struct {
	ID         string           `gorm:"column:id;primaryKey"`
	CustomerID string           `gorm:"column:customer_id;not null"`
	Total      float64          `gorm:"column:total;not null"`
	Items      []orderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type orderItemModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrderID   string  `gorm:"column:order_id;not null;index"`
	ProductID string  `gorm:"column:product_id;not null"`
	Position  int     `gorm:"column:position;not null"`
	Name      string  `gorm:"column:name;not null"`
	Price     float64 `gorm:"column:price;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
}

func allModels() []any {
	return []any{&customerModel{}, &productModel{}, &orderModel{}, &orderItemModel{}}
}
