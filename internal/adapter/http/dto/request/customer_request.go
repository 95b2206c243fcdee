package request

type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	TaxNumber string `json:"tax_number"`
}
