package dto

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}
