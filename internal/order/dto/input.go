package dto

type CreateOrderInput struct {
	CustomerID     int64
	OrderReference string
}
