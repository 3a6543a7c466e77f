package dto

type StoreContactRequest struct {
	Name  string `json:"name" validate:"required,max=150"`
	Phone string `json:"phone" validate:"required,max=30"`
	Email string `json:"email" validate:"omitempty,email"`
	Note  string `json:"note" validate:"omitempty,max=500"`
}

type UpdateContactRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=150"`
	Phone *string `json:"phone" validate:"omitempty,max=30"`
	Email *string `json:"email" validate:"omitempty,email"`
	Note  *string `json:"note" validate:"omitempty,max=500"`
}

type StoreAttributeRequest struct {
	AttrKey   string `json:"attr_key" validate:"required,max=100"`
	AttrValue string `json:"attr_value" validate:"required"`
}

type ListContactsQuery struct {
	Keyword string
	Page    int
	Limit   int
}
