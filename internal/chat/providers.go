package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const providerTimeout = 10 * time.Second

// Provider is one external text-generation backend. Implementations own
// their request/response shapes.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

var httpClient = &http.Client{Timeout: providerTimeout}

// GeminiProvider calls the Google generative language REST API.
type GeminiProvider struct {
	BaseURL string
	APIKey  string
}

func NewGeminiProvider() *GeminiProvider {
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	return &GeminiProvider{
		BaseURL: baseURL,
		APIKey:  os.Getenv("GEMINI_API_KEY"),
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.APIKey == "" {
		return "", errors.New("gemini api key not configured")
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": tutorPreamble + prompt}}},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1beta/models/gemini-1.5-flash:generateContent?key=%s", p.BaseURL, p.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// HuggingFaceProvider calls the HF inference API for a text generation model.
type HuggingFaceProvider struct {
	BaseURL string
	Token   string
	Model   string
}

func NewHuggingFaceProvider() *HuggingFaceProvider {
	baseURL := os.Getenv("HF_API_URL")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	model := os.Getenv("HF_MODEL")
	if model == "" {
		model = "google/flan-t5-large"
	}
	return &HuggingFaceProvider{
		BaseURL: baseURL,
		Token:   os.Getenv("HF_API_TOKEN"),
		Model:   model,
	}
}

func (p *HuggingFaceProvider) Name() string {
	return "huggingface"
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.Token == "" {
		return "", errors.New("huggingface token not configured")
	}

	payload, err := json.Marshal(map[string]string{"inputs": tutorPreamble + prompt})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s", p.BaseURL, p.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.Token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface returned status %d", resp.StatusCode)
	}

	var result []struct {
		GeneratedText string `json:"generated_text"`
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", err
	}

	if len(result) == 0 || result[0].GeneratedText == "" {
		return "", errors.New("huggingface returned no text")
	}

	return result[0].GeneratedText, nil
}

const tutorPreamble = "You are a friendly reading and spelling tutor for students. " +
	"Answer briefly and encourage the student. Question: "
