package domain

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value.
type Status string

// OpResult is the uniform outcome shape of cart-mutating operations.
// Coordination APIs report failures here instead of returning errors so every
// caller can surface the message to the user the same way.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func OK() OpResult { return OpResult{Success: true} }

func Fail(message string) OpResult {
	return OpResult{Success: false, Message: message}
}

// CheckoutResult extends OpResult with the navigation target for checkout.
type CheckoutResult struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}
