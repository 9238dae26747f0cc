package content

import (
	"errors"

	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/pkg/db"
	"gorm.io/gorm"
)

type ContentRepository interface {
	GetRandomPassage() (*ReadingPassage, error)
	GetPassage(id int) (*ReadingPassage, error)
	ListPassages() ([]ReadingPassage, error)
	GetRandomWords(count int) ([]SpellingWord, error)
	CountPassages() (int64, error)
	CountWords() (int64, error)
	CreatePassage(p *ReadingPassage) error
	CreateWords(words []SpellingWord) error
}

type GormContentRepository struct{}

func NewGormContentRepository() *GormContentRepository {
	return &GormContentRepository{}
}

func (r *GormContentRepository) GetRandomPassage() (*ReadingPassage, error) {
	var passage ReadingPassage
	result := db.DB.Preload("Questions").Order("RANDOM()").First(&passage)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "No reading passages available", result.Error)
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting passage", result.Error)
	}

	return &passage, nil
}

func (r *GormContentRepository) GetPassage(id int) (*ReadingPassage, error) {
	var passage ReadingPassage
	result := db.DB.Preload("Questions").First(&passage, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "Passage not found", result.Error)
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting passage", result.Error)
	}

	return &passage, nil
}

func (r *GormContentRepository) ListPassages() ([]ReadingPassage, error) {
	var passages []ReadingPassage
	if err := db.DB.Order("difficulty, title").Find(&passages).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error listing passages", err)
	}

	return passages, nil
}

func (r *GormContentRepository) GetRandomWords(count int) ([]SpellingWord, error) {
	var words []SpellingWord
	if err := db.DB.Order("RANDOM()").Limit(count).Find(&words).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error getting spelling words", err)
	}

	return words, nil
}

func (r *GormContentRepository) CountPassages() (int64, error) {
	var count int64
	if err := db.DB.Model(&ReadingPassage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormContentRepository) CountWords() (int64, error) {
	var count int64
	if err := db.DB.Model(&SpellingWord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormContentRepository) CreatePassage(p *ReadingPassage) error {
	if err := db.DB.Create(p).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating passage", err)
	}
	return nil
}

func (r *GormContentRepository) CreateWords(words []SpellingWord) error {
	if err := db.DB.Create(&words).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating spelling words", err)
	}
	return nil
}
