package leaderboard

type Entry struct {
	Position  int    `json:"position"`
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Exp       int    `json:"exp"`
	Rank      string `json:"rank"`
	AvatarURL string `json:"avatarUrl"`
}

type Standing struct {
	Position int `json:"position"`
	Exp      int `json:"exp"`
}
