package content

import (
	"encoding/json"

	"github.com/wordarena/WordArena/internal/apperrors"
)

const DefaultWordCount = 5
const MaxWordCount = 20

type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) RandomPassage() (*ReadingPassage, error) {
	passage, err := s.repo.GetRandomPassage()
	if err != nil {
		return nil, err
	}

	if len(passage.Questions) == 0 {
		return nil, apperrors.NewAppError(500, "Passage has no questions", nil)
	}

	return passage, nil
}

func (s *ContentService) Passage(id int) (*ReadingPassage, error) {
	return s.repo.GetPassage(id)
}

func (s *ContentService) Passages() ([]ReadingPassage, error) {
	return s.repo.ListPassages()
}

func (s *ContentService) RandomWords(count int) ([]SpellingWord, error) {
	if count <= 0 {
		count = DefaultWordCount
	}
	if count > MaxWordCount {
		count = MaxWordCount
	}

	words, err := s.repo.GetRandomWords(count)
	if err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, apperrors.NewAppError(404, "No spelling words available", nil)
	}

	return words, nil
}

// OptionList decodes the JSON options column of a question.
func OptionList(q *ComprehensionQuestion) ([]string, error) {
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return nil, apperrors.NewAppError(500, "Error decoding question options", err)
	}
	return options, nil
}
