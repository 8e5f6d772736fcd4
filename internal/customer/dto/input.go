package dto

type CreateCustomerInput struct {
	Name    string
	Address string
	City    string
	Country string
}

type UpdateCustomerInput struct {
	ID      int64
	Name    string
	Address string
	City    string
	Country string
}
