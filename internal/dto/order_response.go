package dto

import "time"

type OrderResponse struct {
	ID          string              `json:"id"`
	TotalAmount float64             `json:"totalAmount"`
	TotalItems  int                 `json:"totalItems"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name,omitempty"`
}
