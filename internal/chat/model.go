package chat

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
