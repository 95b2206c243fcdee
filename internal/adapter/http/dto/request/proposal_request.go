package request

type CreateProposalRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
}
