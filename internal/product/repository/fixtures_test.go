package repository

import "github.com/fekuna/omnipos-sales-service/internal/model"

var productFixture = model.Product{
	ProductName: "Mug",
	UnitPrice:   5,
	SupplierID:  1,
}
