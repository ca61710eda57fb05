package dto

type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}
