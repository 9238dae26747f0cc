package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func TestContentService_RandomPassage(t *testing.T) {
	mockRepo := &MockContentRepository{}
	service := NewContentService(mockRepo)

	passage := &ReadingPassage{
		ID:    1,
		Title: "The Honeybee Waggle Dance",
		Questions: []ComprehensionQuestion{
			{ID: 1, Prompt: "q1", Options: datatypes.JSON(`["a","b"]`), CorrectIndex: 0},
		},
	}
	mockRepo.On("GetRandomPassage").Return(passage, nil)

	result, err := service.RandomPassage()
	assert.NoError(t, err)
	assert.Equal(t, passage, result)
	mockRepo.AssertExpectations(t)
}

func TestContentService_RandomPassage_NoQuestions(t *testing.T) {
	mockRepo := &MockContentRepository{}
	service := NewContentService(mockRepo)

	mockRepo.On("GetRandomPassage").Return(&ReadingPassage{ID: 2}, nil)

	_, err := service.RandomPassage()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no questions")
	mockRepo.AssertExpectations(t)
}

func TestContentService_RandomWords_DefaultCount(t *testing.T) {
	mockRepo := &MockContentRepository{}
	service := NewContentService(mockRepo)

	words := []SpellingWord{{ID: 1, Word: "library"}}
	mockRepo.On("GetRandomWords", DefaultWordCount).Return(words, nil)

	result, err := service.RandomWords(0)
	assert.NoError(t, err)
	assert.Equal(t, words, result)
	mockRepo.AssertExpectations(t)
}

func TestContentService_RandomWords_CapsCount(t *testing.T) {
	mockRepo := &MockContentRepository{}
	service := NewContentService(mockRepo)

	words := []SpellingWord{{ID: 1, Word: "vacuum"}}
	mockRepo.On("GetRandomWords", MaxWordCount).Return(words, nil)

	_, err := service.RandomWords(500)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOptionList(t *testing.T) {
	q := &ComprehensionQuestion{Options: datatypes.JSON(`["north","south","east"]`)}

	options, err := OptionList(q)
	assert.NoError(t, err)
	assert.Equal(t, []string{"north", "south", "east"}, options)
}

func TestOptionList_Invalid(t *testing.T) {
	q := &ComprehensionQuestion{Options: datatypes.JSON(`{broken`)}

	_, err := OptionList(q)
	assert.Error(t, err)
}

func TestSeed_SkipsWhenPopulated(t *testing.T) {
	mockRepo := &MockContentRepository{}
	mockRepo.On("CountPassages").Return(int64(3), nil)
	mockRepo.On("CountWords").Return(int64(15), nil)

	err := Seed(mockRepo)
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "CreatePassage")
	mockRepo.AssertNotCalled(t, "CreateWords")
}

func TestSeed_InsertsDefaults(t *testing.T) {
	mockRepo := &MockContentRepository{}
	mockRepo.On("CountPassages").Return(int64(0), nil)
	mockRepo.On("CountWords").Return(int64(0), nil)
	mockRepo.On("CreatePassage", mock.AnythingOfType("*content.ReadingPassage")).Return(nil)
	mockRepo.On("CreateWords", mock.AnythingOfType("[]content.SpellingWord")).Return(nil)

	err := Seed(mockRepo)
	assert.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "CreatePassage", len(defaultPassages))
	mockRepo.AssertExpectations(t)
}
