package advisor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// maxTips 單次最多採用的建議數
const maxTips = 5

const systemPrompt = "You are a cooking assistant. Given a recipe that was scaled by a multiplier, " +
	"reply with a JSON object {\"tips\": [\"...\"]} containing at most 5 short practical tips " +
	"about cooking the scaled batch. Do not restate quantities. Reply with JSON only."

// OpenRouter 透過 OpenRouter chat completions 取得建議
type OpenRouter struct {
	cfg    config.OpenRouterConfig
	client *resty.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type tipsReply struct {
	Tips []string `json:"tips"`
}

// NewOpenRouter 創建 OpenRouter 建議服務
func NewOpenRouter(cfg config.OpenRouterConfig) *OpenRouter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("HTTP-Referer", "https://github.com/recipe-scaler").
		SetHeader("X-Title", "Recipe Scaler")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &OpenRouter{cfg: cfg, client: client}
}

// Advise 送出縮放後的食材清單並解析建議
func (o *OpenRouter) Advise(ctx context.Context, recipe *scaling.ScaledRecipe) (tips []string, err error) {
	start := time.Now()
	defer func() { common.LogAdvisorCall(o.cfg.Model, time.Since(start), err) }()

	req := chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(recipe)},
		},
		MaxTokens: o.cfg.MaxTokens,
	}

	var result chatResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return nil, common.ErrAdvisorError.Wrap(fmt.Errorf("failed to send request to OpenRouter: %w", err))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, common.ErrAdvisorError.Wrap(fmt.Errorf("OpenRouter API returned %d: %s", resp.StatusCode(), resp.String()))
	}
	if len(result.Choices) == 0 {
		return nil, common.ErrAdvisorError.Wrap(fmt.Errorf("no choices in OpenRouter response"))
	}

	var reply tipsReply
	content := common.ExtractJSONObject(result.Choices[0].Message.Content)
	if err := common.ParseJSON(content, &reply); err != nil {
		return nil, common.ErrAdvisorError.Wrap(fmt.Errorf("failed to parse advisor reply: %w", err))
	}

	for _, tip := range reply.Tips {
		tip = strings.TrimSpace(tip)
		if tip == "" {
			continue
		}
		tips = append(tips, tip)
		if len(tips) == maxTips {
			break
		}
	}
	return tips, nil
}

func buildPrompt(recipe *scaling.ScaledRecipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Multiplier: %g\n", recipe.Multiplier)
	if recipe.Servings.Amount > 0 {
		fmt.Fprintf(&sb, "Servings: %g %s\n", recipe.Servings.Amount, recipe.Servings.Unit)
	}
	sb.WriteString("Ingredients:\n")
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(&sb, "- %s\n", ing.DisplayText)
	}
	return sb.String()
}
