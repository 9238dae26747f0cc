package user

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"password,omitempty"`
}

type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Exp       int       `gorm:"not null;default:0" json:"exp"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfileResponse struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Exp       int    `json:"exp"`
	Rank      string `json:"rank"`
	AvatarURL string `json:"avatarUrl"`
}
