package dto

type CreateProductInput struct {
	ProductName string
	UnitPrice   float64
	SupplierID  int64
}
