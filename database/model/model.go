package model

// Product is a sellable catalog item. ImageUrl holds the stored upload
// path and stays empty when no image (or a rejected one) was supplied.
type Product struct {
	Id          int     `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" form:"name"`
	Price       float64 `json:"price" form:"price"`
	Category    string  `json:"category" form:"category"`
	ImageUrl    string  `json:"imageUrl"`
	Description string  `json:"description" form:"description"`
}

// StockLog is one inventory movement event. ProductId is an unenforced
// reference: deleting a product leaves its log rows in place, and the
// joined history view simply stops showing them.
type StockLog struct {
	Id                int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	ProductId         int    `json:"productId" form:"product_id" gorm:"index"`
	Quantity          int    `json:"quantity" form:"quantity"`
	OperationType     string `json:"operationType" form:"operation_type"`
	Datetime          string `json:"datetime" gorm:"column:datetime"`
	ResponsiblePerson string `json:"responsiblePerson" form:"responsible_person"`
}

// Manager is a staff account. Name carries no uniqueness constraint and
// Role is stored but never checked anywhere.
type Manager struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" form:"name"`
	Password string `json:"-" form:"password"`
	Role     string `json:"role" form:"role"`
}
