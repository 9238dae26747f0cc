package content

import (
	"time"

	"gorm.io/datatypes"
)

type ReadingPassage struct {
	ID         uint                    `gorm:"primaryKey" json:"id"`
	Title      string                  `gorm:"not null" json:"title"`
	Slug       string                  `gorm:"uniqueIndex;not null" json:"slug"`
	Body       string                  `gorm:"type:text;not null" json:"body"`
	Difficulty int                     `gorm:"not null;default:1" json:"difficulty"`
	Questions  []ComprehensionQuestion `gorm:"foreignKey:PassageID" json:"questions,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

type ComprehensionQuestion struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	PassageID    uint           `gorm:"not null;index" json:"passage_id"`
	Prompt       string         `gorm:"not null" json:"prompt"`
	Options      datatypes.JSON `gorm:"not null" json:"options"`
	CorrectIndex int            `gorm:"not null" json:"-"`
}

type SpellingWord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Word       string    `gorm:"uniqueIndex;not null" json:"-"`
	Definition string    `gorm:"not null" json:"definition"`
	Hint       string    `json:"hint"`
	Difficulty int       `gorm:"not null;default:1" json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}
