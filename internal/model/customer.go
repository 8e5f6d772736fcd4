package model

type Customer struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
	City    string `db:"city" json:"city"`
	Country string `db:"country" json:"country"`
}
