package dto

// PriceInput is a caller-supplied price attached to a create or update
// request. The plan id back-reference is assigned server-side, so no field
// for it exists here.
type PriceInput struct {
	CurrencyCode string `json:"currency_code"`
	Amount       uint64 `json:"amount"`
}
