package content

import (
	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetRandomPassage() (*ReadingPassage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReadingPassage), args.Error(1)
}

func (m *MockContentRepository) GetPassage(id int) (*ReadingPassage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReadingPassage), args.Error(1)
}

func (m *MockContentRepository) ListPassages() ([]ReadingPassage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReadingPassage), args.Error(1)
}

func (m *MockContentRepository) GetRandomWords(count int) ([]SpellingWord, error) {
	args := m.Called(count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SpellingWord), args.Error(1)
}

func (m *MockContentRepository) CountPassages() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) CountWords() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) CreatePassage(p *ReadingPassage) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockContentRepository) CreateWords(words []SpellingWord) error {
	args := m.Called(words)
	return args.Error(0)
}
