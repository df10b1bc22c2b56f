package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
	"skillbridge_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AIService 封装对话补全上游调用，并从非结构化模型输出中提取结构化数据。
// 上游输出格式不保证，所有结构化提取点都有确定的降级默认值，
// 解析失败只会产生质量较低（但合法）的结果，不会让调用方崩溃。
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
		Delta   AIChatMessage `json:"delta"` // 流式响应
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatCompletionOptions 单次补全调用的参数
type ChatCompletionOptions struct {
	Messages     []AIChatMessage
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	Model        string
}

// CreateChatCompletion 发送一次对话补全请求；HTTP 非 2xx 时返回携带上游错误信息的 error
func (s *AIService) CreateChatCompletion(ctx context.Context, opts ChatCompletionOptions) (string, error) {
	if s.config.APIKey == "" {
		return "", util.ErrAINotConfigured
	}

	messages := make([]AIChatMessage, 0, len(opts.Messages)+1)
	if opts.SystemPrompt != "" {
		messages = append(messages, AIChatMessage{Role: "system", Content: opts.SystemPrompt})
	}
	messages = append(messages, opts.Messages...)

	modelName := opts.Model
	if modelName == "" {
		modelName = s.config.Model
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = s.config.Temperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = s.config.MaxTokens
	}

	reqBody := ChatCompletionRequest{
		Model:       modelName,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	monitoring.ObserveAICall("llm", "chat_completion", start, err)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		// 尽量透出上游的错误信息
		var errResp ChatCompletionResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// RecommendationPromptOptions 技能推荐生成参数
type RecommendationPromptOptions struct {
	CurrentSkills  []string
	TargetRole     string
	Count          int
	CompletionRate float64
	Difficulty     string
}

// GenerateSkillRecommendations 请求模型输出 JSON 数组并解析；
// 解析失败时返回空列表而不是错误，由调用方按低质量结果处理
func (s *AIService) GenerateSkillRecommendations(ctx context.Context, opts RecommendationPromptOptions) ([]model.SkillRecommendation, error) {
	count := opts.Count
	if count <= 0 {
		count = 5
	}

	prompt := fmt.Sprintf(
		"The user currently knows: %s.\nTheir target role is: %s.\nTheir historical completion rate is %.0f%% and they prefer %s difficulty content.\n\nRecommend %d skills they should learn next. Respond ONLY with a JSON array, each element shaped as:\n{\"skillName\": string, \"matchScore\": number (0-100), \"reason\": string, \"estimatedHours\": number, \"relatedSkills\": [string]}",
		strings.Join(opts.CurrentSkills, ", "),
		opts.TargetRole,
		opts.CompletionRate*100,
		strings.ToLower(opts.Difficulty),
		count,
	)

	content, err := s.CreateChatCompletion(ctx, ChatCompletionOptions{
		Messages:     []AIChatMessage{{Role: "user", Content: prompt}},
		SystemPrompt: "You are a career development advisor. You respond with strictly valid JSON when asked for structured data.",
	})
	if err != nil {
		return nil, err
	}

	var recs []model.SkillRecommendation
	if err := util.ExtractJSONArray(content, &recs); err != nil {
		logger.Log.Warn("技能推荐JSON解析失败，返回空列表", zap.Error(err))
		return []model.SkillRecommendation{}, nil
	}
	return recs, nil
}

// LearningPathOptions 学习路径生成参数
type LearningPathOptions struct {
	TargetRole    string
	CurrentSkills []string
	MarketSkills  []string
}

// GenerateLearningPath 请求模型输出单个 JSON 对象；
// 解析失败时由输入参数合成一条默认路径（MEDIUM 难度，职业前景置零）
func (s *AIService) GenerateLearningPath(ctx context.Context, opts LearningPathOptions) (*model.PathRecommendation, error) {
	prompt := fmt.Sprintf(
		"Build a learning path toward the role %q.\nThe user already knows: %s.\nSkills in market demand for this role: %s.\n\nRespond ONLY with a JSON object shaped as:\n{\"title\": string, \"description\": string, \"targetRole\": string, \"skills\": [string] (ordered), \"estimatedWeeks\": number, \"difficulty\": \"EASY\"|\"MEDIUM\"|\"HARD\", \"careerOutlook\": {\"averageSalary\": number, \"growthRate\": number, \"demandLevel\": string}}",
		opts.TargetRole,
		strings.Join(opts.CurrentSkills, ", "),
		strings.Join(opts.MarketSkills, ", "),
	)

	content, err := s.CreateChatCompletion(ctx, ChatCompletionOptions{
		Messages:     []AIChatMessage{{Role: "user", Content: prompt}},
		SystemPrompt: "You are a career development advisor. You respond with strictly valid JSON when asked for structured data.",
	})
	if err != nil {
		return nil, err
	}

	var path model.PathRecommendation
	if err := util.ExtractJSONObject(content, &path); err != nil {
		logger.Log.Warn("学习路径JSON解析失败，使用默认路径", zap.Error(err), zap.String("role", opts.TargetRole))
		return DefaultLearningPath(opts), nil
	}
	if path.TargetRole == "" {
		path.TargetRole = opts.TargetRole
	}
	return &path, nil
}

// DefaultLearningPath 解析失败时的降级路径
func DefaultLearningPath(opts LearningPathOptions) *model.PathRecommendation {
	skills := opts.MarketSkills
	if len(skills) == 0 {
		skills = opts.CurrentSkills
	}
	return &model.PathRecommendation{
		Title:          fmt.Sprintf("Path to %s", opts.TargetRole),
		Description:    fmt.Sprintf("A structured learning path toward the %s role.", opts.TargetRole),
		TargetRole:     opts.TargetRole,
		Skills:         skills,
		EstimatedWeeks: 12,
		Difficulty:     model.PathMedium,
		CareerOutlook:  model.CareerOutlook{},
	}
}

// CoachContext 教练人设所需的用户背景
type CoachContext struct {
	UserName      string
	TargetRole    string
	CurrentSkills []string
}

func coachSystemPrompt(userCtx CoachContext) string {
	var b strings.Builder
	b.WriteString("You are SkillBridge, a supportive and pragmatic AI career coach. ")
	b.WriteString("Keep answers short, conversational and actionable; the reply may be read aloud by a voice assistant. ")
	b.WriteString("Never invent credentials or promise job offers.")
	if userCtx.UserName != "" {
		b.WriteString(fmt.Sprintf("\nThe user's name is %s.", userCtx.UserName))
	}
	if userCtx.TargetRole != "" {
		b.WriteString(fmt.Sprintf("\nThey are working toward the role: %s.", userCtx.TargetRole))
	}
	if len(userCtx.CurrentSkills) > 0 {
		b.WriteString(fmt.Sprintf("\nCurrent skills: %s.", strings.Join(userCtx.CurrentSkills, ", ")))
	}
	return b.String()
}

// GenerateCoachResponse 教练对话，自由文本输出
func (s *AIService) GenerateCoachResponse(ctx context.Context, messages []AIChatMessage, userCtx CoachContext) (string, error) {
	return s.CreateChatCompletion(ctx, ChatCompletionOptions{
		Messages:     messages,
		SystemPrompt: coachSystemPrompt(userCtx),
	})
}

// ChatStream 流式教练对话（SSE），逐段返回增量内容
func (s *AIService) ChatStream(ctx context.Context, messages []AIChatMessage, userCtx CoachContext) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	all := make([]AIChatMessage, 0, len(messages)+1)
	all = append(all, AIChatMessage{Role: "system", Content: coachSystemPrompt(userCtx)})
	all = append(all, messages...)

	reqBody := map[string]interface{}{
		"model":    s.config.Model,
		"messages": all,
		"stream":   true,
	}

	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		if s.config.APIKey == "" {
			errChan <- util.ErrAINotConfigured
			return
		}

		req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
		if err != nil {
			errChan <- err
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

		start := time.Now()
		resp, err := s.client.Do(req)
		monitoring.ObserveAICall("llm", "chat_stream", start, err)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp ChatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					out <- content
				}
			}
		}
	}()

	return out, errChan
}
