package repository

import "github.com/fekuna/omnipos-sales-service/internal/model"

var customerFixture = model.Customer{
	ID:      7,
	Name:    "Ana",
	Address: "Calle 1",
	City:    "Lima",
	Country: "Peru",
}
