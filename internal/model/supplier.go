package model

type Supplier struct {
	ID           int64  `db:"id" json:"id"`
	SupplierName string `db:"supplier_name" json:"supplier_name"`
}
