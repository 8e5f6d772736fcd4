package model

import "time"

type Order struct {
	ID             int64     `db:"id" json:"id"`
	OrderDate      time.Time `db:"order_date" json:"order_date"`
	OrderReference string    `db:"order_reference" json:"order_reference"`
	CustomerID     int64     `db:"customer_id" json:"customer_id"`
}

type OrderItem struct {
	ID        int64 `db:"id" json:"id"`
	OrderID   int64 `db:"order_id" json:"order_id"`
	ProductID int64 `db:"product_id" json:"product_id"`
	Quantity  int64 `db:"quantity" json:"quantity"`
}

// CustomerOrder is the joined projection for a customer's order history:
// one row per order item, with product and supplier data attached.
type CustomerOrder struct {
	OrderReference string    `db:"order_reference" json:"order_reference"`
	OrderDate      time.Time `db:"order_date" json:"order_date"`
	ProductName    string    `db:"product_name" json:"product_name"`
	Quantity       int64     `db:"quantity" json:"quantity"`
	UnitPrice      float64   `db:"unit_price" json:"unit_price"`
	SupplierName   string    `db:"supplier_name" json:"supplier_name"`
}
