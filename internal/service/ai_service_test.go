package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})
}

func TestCreateChatCompletion(t *testing.T) {
	srv := newChatCompletionServer(t, "hello there")
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	got, err := svc.CreateChatCompletion(context.Background(), ChatCompletionOptions{
		Messages: []AIChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
}

func TestCreateChatCompletionMissingKey(t *testing.T) {
	svc := NewAIService(config.AIConfig{BaseURL: "http://localhost:1"})
	_, err := svc.CreateChatCompletion(context.Background(), ChatCompletionOptions{})
	assert.ErrorIs(t, err, util.ErrAINotConfigured)
}

func TestCreateChatCompletionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Incorrect API key provided"},
		})
	}))
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	_, err := svc.CreateChatCompletion(context.Background(), ChatCompletionOptions{
		Messages: []AIChatMessage{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestGenerateSkillRecommendationsParsesJSON(t *testing.T) {
	content := "Here you go:\n```json\n[{\"skillName\":\"Kubernetes\",\"matchScore\":72,\"reason\":\"high demand\",\"estimatedHours\":40,\"relatedSkills\":[\"Docker\"]}]\n```"
	srv := newChatCompletionServer(t, content)
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	recs, err := svc.GenerateSkillRecommendations(context.Background(), RecommendationPromptOptions{
		CurrentSkills: []string{"Docker"},
		TargetRole:    "DevOps Engineer",
		Count:         3,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Kubernetes", recs[0].SkillName)
	assert.Equal(t, 72, recs[0].MatchScore)
	assert.Equal(t, []string{"Docker"}, recs[0].RelatedSkills)
}

func TestGenerateSkillRecommendationsDegradesToEmpty(t *testing.T) {
	srv := newChatCompletionServer(t, "I'm unable to produce structured output right now.")
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	recs, err := svc.GenerateSkillRecommendations(context.Background(), RecommendationPromptOptions{
		TargetRole: "Data Scientist",
	})
	require.NoError(t, err, "解析失败不算错误")
	assert.Empty(t, recs)
}

func TestGenerateLearningPathParsesJSON(t *testing.T) {
	content := `{"title":"Become a Data Scientist","description":"step by step","targetRole":"Data Scientist","skills":["Python","SQL"],"estimatedWeeks":16,"difficulty":"HARD","careerOutlook":{"averageSalary":125000,"growthRate":12.5,"demandLevel":"high"}}`
	srv := newChatCompletionServer(t, content)
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	path, err := svc.GenerateLearningPath(context.Background(), LearningPathOptions{
		TargetRole:   "Data Scientist",
		MarketSkills: []string{"Python", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Become a Data Scientist", path.Title)
	assert.Equal(t, model.PathHard, path.Difficulty)
	assert.Equal(t, 16, path.EstimatedWeeks)
	assert.Equal(t, 125000, path.CareerOutlook.AverageSalary)
}

func TestGenerateLearningPathDegradesToDefault(t *testing.T) {
	srv := newChatCompletionServer(t, "Sorry, no JSON today.")
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	path, err := svc.GenerateLearningPath(context.Background(), LearningPathOptions{
		TargetRole:   "AI/ML Engineer",
		MarketSkills: []string{"Python", "MLOps"},
	})
	require.NoError(t, err)
	assert.Equal(t, "AI/ML Engineer", path.TargetRole)
	assert.Equal(t, model.PathMedium, path.Difficulty)
	assert.Equal(t, []string{"Python", "MLOps"}, path.Skills)
}

func TestChatStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{"Hel", "lo"}
		for _, c := range chunks {
			payload, _ := json.Marshal(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"delta": map[string]string{"content": c}},
				},
			})
			w.Write([]byte("data: " + string(payload) + "\n\n"))
		}
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	out, errChan := svc.ChatStream(context.Background(), []AIChatMessage{{Role: "user", Content: "hi"}}, CoachContext{})

	var full string
	for chunk := range out {
		full += chunk
	}
	require.NoError(t, <-errChan)
	assert.Equal(t, "Hello", full)
}
