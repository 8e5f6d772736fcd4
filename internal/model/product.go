package model

type Product struct {
	ID          int64   `db:"id" json:"id"`
	ProductName string  `db:"product_name" json:"product_name"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
	SupplierID  int64   `db:"supplier_id" json:"supplier_id"`
}

// ProductSupplier is the joined projection served by the products listing.
// Its shape is the same whether or not a name filter is applied.
type ProductSupplier struct {
	ProductName  string `db:"product_name" json:"product_name"`
	SupplierName string `db:"supplier_name" json:"supplier_name"`
}
