package handler

import (
	"encoding/json"
	"net/http"

	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/usecase"
	"github.com/thien1805/scrum-to-your-doctor/pkg/response"
	"github.com/thien1805/scrum-to-your-doctor/pkg/validator"
)

type SuggestionHandler struct {
	suggestionUsecase usecase.SuggestionUsecase
	validator         *validator.CustomValidator
}

func NewSuggestionHandler(suggestionUsecase usecase.SuggestionUsecase, validator *validator.CustomValidator) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUsecase: suggestionUsecase,
		validator:         validator,
	}
}

// SuggestSpecialty maps a symptom description onto clinic specialties
func (h *SuggestionHandler) SuggestSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestion, err := h.suggestionUsecase.SuggestSpecialties(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmptySymptoms:
			response.BadRequest(w, err.Error())
		case usecase.ErrSuggestionUnavailable:
			response.InternalServerError(w, "Specialty suggestion is temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to suggest specialties")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialties suggested successfully", suggestion)
}
