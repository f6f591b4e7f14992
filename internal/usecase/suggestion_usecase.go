package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmptySymptoms         = errors.New("symptoms description is empty")
	ErrSuggestionUnavailable = errors.New("specialty suggestion is unavailable")
)

// maxSuggestedSpecialties caps how many specialty ids a single suggestion
// may return, whatever the classifier produces.
const maxSuggestedSpecialties = 10

// SpecialtyClassifier maps a free-text symptom description onto specialty
// ids drawn from the supplied catalog.
type SpecialtyClassifier interface {
	SuggestSpecialtyIDs(ctx context.Context, symptoms string, specialties []entity.Specialty) ([]int, error)
}

type SuggestionUsecase interface {
	SuggestSpecialties(ctx context.Context, req *dto.SuggestSpecialtyRequest) (*dto.SuggestSpecialtyResponse, error)
}

type suggestionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	classifier    SpecialtyClassifier
}

func NewSuggestionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	classifier SpecialtyClassifier,
) SuggestionUsecase {
	return &suggestionUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
		classifier:    classifier,
	}
}

// SuggestSpecialties asks the classifier which specialties fit the symptom
// description. Ids the classifier invents that are not in the catalog are
// dropped; classifier failure surfaces as ErrSuggestionUnavailable so the
// handler can distinguish it from caller mistakes.
func (u *suggestionUsecase) SuggestSpecialties(ctx context.Context, req *dto.SuggestSpecialtyRequest) (*dto.SuggestSpecialtyResponse, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		return nil, ErrEmptySymptoms
	}

	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}
	if len(specialties) == 0 {
		return &dto.SuggestSpecialtyResponse{SpecialtyIDs: []int{}}, nil
	}

	ids, err := u.classifier.SuggestSpecialtyIDs(ctx, symptoms, specialties)
	if err != nil {
		u.log.Warnf("Specialty classifier failed: %+v", err)
		return nil, ErrSuggestionUnavailable
	}

	known := make(map[int]struct{}, len(specialties))
	for _, s := range specialties {
		known[s.ID] = struct{}{}
	}

	filtered := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		filtered = append(filtered, id)
		if len(filtered) == maxSuggestedSpecialties {
			break
		}
	}

	return &dto.SuggestSpecialtyResponse{SpecialtyIDs: filtered}, nil
}
