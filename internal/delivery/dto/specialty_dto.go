package dto

type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
