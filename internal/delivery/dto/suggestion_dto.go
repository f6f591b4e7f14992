package dto

type SuggestSpecialtyRequest struct {
	Symptoms string `json:"symptoms" validate:"required,max=4000"`
}

type SuggestSpecialtyResponse struct {
	SpecialtyIDs []int `json:"specialty_ids"`
}
