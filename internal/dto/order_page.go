package dto

import "time"

type OrderPageRequest struct {
	Page   int
	Limit  int
	Status string
}

type OrderPageResponse struct {
	Data []OrderSummary `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// OrderSummary is an order without its items, as returned by the listing.
type OrderSummary struct {
	ID          string    `json:"id"`
	TotalAmount float64   `json:"totalAmount"`
	TotalItems  int       `json:"totalItems"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
}
