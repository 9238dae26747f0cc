package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	return p.reply, p.err
}

func TestResponder_KeywordMatch(t *testing.T) {
	provider := &stubProvider{name: "stub", reply: "should not be used"}
	r := NewResponder(provider)

	resp := r.Respond(context.Background(), "What is a NOUN?")
	assert.Equal(t, "tutor", resp.Source)
	assert.Contains(t, resp.Reply, "noun names a person")
	assert.Zero(t, provider.calls, "provider must not be called on keyword hit")
}

func TestResponder_KeywordNeedsFullPhrase(t *testing.T) {
	provider := &stubProvider{name: "stub", reply: "Photosynthesis turns light into food."}
	r := NewResponder(provider)

	// "explain" must not trip the EXP rule.
	resp := r.Respond(context.Background(), "explain photosynthesis")
	assert.Equal(t, "stub", resp.Source)
	assert.Equal(t, 1, provider.calls)

	resp = r.Respond(context.Background(), "how do I earn EXP?")
	assert.Equal(t, "tutor", resp.Source)
	assert.Contains(t, resp.Reply, "EXP")
	assert.Equal(t, 1, provider.calls, "keyword hit must not call the provider")
}

func TestResponder_ProviderFallback(t *testing.T) {
	failing := &stubProvider{name: "first", err: errors.New("down")}
	working := &stubProvider{name: "second", reply: "Here is a thoughtful answer."}
	r := NewResponder(failing, working)

	resp := r.Respond(context.Background(), "explain photosynthesis to me")
	assert.Equal(t, "second", resp.Source)
	assert.Equal(t, "Here is a thoughtful answer.", resp.Reply)
	assert.Equal(t, 1, failing.calls)
}

func TestResponder_CannedFallback(t *testing.T) {
	failing := &stubProvider{name: "first", err: errors.New("down")}
	r := NewResponder(failing)

	resp := r.Respond(context.Background(), "explain quantum tunneling")
	assert.Equal(t, "canned", resp.Source)
	assert.Contains(t, cannedReplies, resp.Reply)
}

func TestResponder_EmptyProviderReplySkipped(t *testing.T) {
	empty := &stubProvider{name: "empty", reply: "   "}
	r := NewResponder(empty)

	resp := r.Respond(context.Background(), "explain gravity")
	assert.Equal(t, "canned", resp.Source)
}

func TestGeminiProvider_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Contains(t, req.URL.Path, "generateContent")
		assert.Equal(t, "test-key", req.URL.Query().Get("key"))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A verb is an action word."}]}}]}`))
	}))
	defer server.Close()

	p := &GeminiProvider{BaseURL: server.URL, APIKey: "test-key"}
	reply, err := p.Generate(context.Background(), "what is a verb")
	assert.NoError(t, err)
	assert.Equal(t, "A verb is an action word.", reply)
}

func TestGeminiProvider_NotConfigured(t *testing.T) {
	p := &GeminiProvider{BaseURL: "http://localhost:1"}
	_, err := p.Generate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestGeminiProvider_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := &GeminiProvider{BaseURL: server.URL, APIKey: "test-key"}
	_, err := p.Generate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestHuggingFaceProvider_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		w.Write([]byte(`[{"generated_text":"Spelling improves with practice."}]`))
	}))
	defer server.Close()

	p := &HuggingFaceProvider{BaseURL: server.URL, Token: "test-token", Model: "test-model"}
	reply, err := p.Generate(context.Background(), "spelling help")
	assert.NoError(t, err)
	assert.Equal(t, "Spelling improves with practice.", reply)
}

func TestHuggingFaceProvider_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	p := &HuggingFaceProvider{BaseURL: server.URL, Token: "test-token", Model: "test-model"}
	_, err := p.Generate(context.Background(), "spelling help")
	assert.Error(t, err)
}
