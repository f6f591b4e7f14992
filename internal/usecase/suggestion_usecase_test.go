package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/thien1805/scrum-to-your-doctor/internal/delivery/dto"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
)

type stubClassifier struct {
	ids []int
	err error
}

func (s *stubClassifier) SuggestSpecialtyIDs(ctx context.Context, symptoms string, specialties []entity.Specialty) ([]int, error) {
	return s.ids, s.err
}

func suggestionCatalog() []entity.Specialty {
	return []entity.Specialty{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Dermatology"},
		{ID: 3, Name: "Neurology"},
	}
}

func TestSuggestSpecialties(t *testing.T) {
	uc := NewSuggestionUsecase(
		testDB(t),
		testLogger(),
		&fakeSpecialtyRepo{specialties: suggestionCatalog()},
		&stubClassifier{ids: []int{3, 1}},
	)

	resp, err := uc.SuggestSpecialties(context.Background(), &dto.SuggestSpecialtyRequest{Symptoms: "headaches and blurry vision"})
	if err != nil {
		t.Fatalf("SuggestSpecialties() error = %v", err)
	}
	if !reflect.DeepEqual(resp.SpecialtyIDs, []int{3, 1}) {
		t.Errorf("ids = %v, want [3 1]", resp.SpecialtyIDs)
	}
}

func TestSuggestSpecialtiesFiltersUnknownAndDuplicateIDs(t *testing.T) {
	uc := NewSuggestionUsecase(
		testDB(t),
		testLogger(),
		&fakeSpecialtyRepo{specialties: suggestionCatalog()},
		&stubClassifier{ids: []int{42, 2, 2, -1, 3}},
	)

	resp, err := uc.SuggestSpecialties(context.Background(), &dto.SuggestSpecialtyRequest{Symptoms: "rash"})
	if err != nil {
		t.Fatalf("SuggestSpecialties() error = %v", err)
	}
	if !reflect.DeepEqual(resp.SpecialtyIDs, []int{2, 3}) {
		t.Errorf("ids = %v, want [2 3]", resp.SpecialtyIDs)
	}
}

func TestSuggestSpecialtiesEmptySymptoms(t *testing.T) {
	uc := NewSuggestionUsecase(
		testDB(t),
		testLogger(),
		&fakeSpecialtyRepo{specialties: suggestionCatalog()},
		&stubClassifier{},
	)

	for _, symptoms := range []string{"", "   ", "\n\t"} {
		if _, err := uc.SuggestSpecialties(context.Background(), &dto.SuggestSpecialtyRequest{Symptoms: symptoms}); !errors.Is(err, ErrEmptySymptoms) {
			t.Errorf("SuggestSpecialties(%q) error = %v, want ErrEmptySymptoms", symptoms, err)
		}
	}
}

func TestSuggestSpecialtiesClassifierFailure(t *testing.T) {
	uc := NewSuggestionUsecase(
		testDB(t),
		testLogger(),
		&fakeSpecialtyRepo{specialties: suggestionCatalog()},
		&stubClassifier{err: errors.New("upstream timeout")},
	)

	if _, err := uc.SuggestSpecialties(context.Background(), &dto.SuggestSpecialtyRequest{Symptoms: "chest pain"}); !errors.Is(err, ErrSuggestionUnavailable) {
		t.Errorf("SuggestSpecialties() error = %v, want ErrSuggestionUnavailable", err)
	}
}

func TestSuggestSpecialtiesEmptyCatalog(t *testing.T) {
	uc := NewSuggestionUsecase(
		testDB(t),
		testLogger(),
		&fakeSpecialtyRepo{},
		&stubClassifier{ids: []int{1}},
	)

	resp, err := uc.SuggestSpecialties(context.Background(), &dto.SuggestSpecialtyRequest{Symptoms: "fatigue"})
	if err != nil {
		t.Fatalf("SuggestSpecialties() error = %v", err)
	}
	if len(resp.SpecialtyIDs) != 0 {
		t.Errorf("ids = %v, want empty", resp.SpecialtyIDs)
	}
}

func TestSuggestSpecialtiesCapsResults(t *testing.T) {
	catalog := make([]entity.Specialty, 0, 15)
	ids := make([]int, 0, 15)
	for i := 1; i <= 15; i++ {
		catalog = append(catalog, entity.Specialty{ID: i, Name: string(rune('A' + i))})
		ids = append(ids, i)
	}

	uc := NewSuggestionUsecase(
		testDB(t),
		testLogger(),
		&fakeSpecialtyRepo{specialties: catalog},
		&stubClassifier{ids: ids},
	)

	resp, err := uc.SuggestSpecialties(context.Background(), &dto.SuggestSpecialtyRequest{Symptoms: "everything hurts"})
	if err != nil {
		t.Fatalf("SuggestSpecialties() error = %v", err)
	}
	if len(resp.SpecialtyIDs) != maxSuggestedSpecialties {
		t.Errorf("len(ids) = %d, want %d", len(resp.SpecialtyIDs), maxSuggestedSpecialties)
	}
}
