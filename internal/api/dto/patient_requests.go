package dto

// CreateRequest is the body of POST /patients. All three fields are
// required.
type CreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// UpdateRequest is the body of PUT /patients/{id}. Every field is optional;
// a nil field is left untouched (partial update, not replace).
type UpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
