package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ewetherby/dragnet/internal/logging"
)

const defaultEndpoint = "https://api.deepseek.com/v1/chat/completions"

// DeepSeekClient implements Client against the DeepSeek chat API.
type DeepSeekClient struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewDeepSeekClient creates a client. An empty apiKey makes it unavailable;
// callers then use FallbackPlan without ever touching the network.
func NewDeepSeekClient(apiKey, model, endpoint string) *DeepSeekClient {
	if model == "" {
		model = "deepseek-chat"
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &DeepSeekClient{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DeepSeekClient) Name() string {
	return "deepseek"
}

func (c *DeepSeekClient) Available() bool {
	return c.apiKey != ""
}

// Suggest asks the service for a candidate plan and parses the JSON reply.
func (c *DeepSeekClient) Suggest(ctx context.Context, name string, targetCtx map[string]string) (Plan, error) {
	if !c.Available() {
		return Plan{}, fmt.Errorf("advisory service not configured")
	}

	ctxJSON, err := json.Marshal(targetCtx)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to marshal context: %w", err)
	}

	prompt := fmt.Sprintf(`You are an OSINT investigation strategist. Analyze this target and provide:
1. Likely username patterns
2. Probable email formats
3. Most likely social media platforms
4. Search strategy recommendations

Target: %s
Context: %s

Respond in JSON format with: username_patterns, email_patterns, platforms, strategy`, name, ctxJSON)

	content, err := c.complete(ctx, prompt, 0.7)
	if err != nil {
		return Plan{}, err
	}

	var plan Plan
	if err := json.Unmarshal([]byte(stripFences(content)), &plan); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	if len(plan.UsernamePatterns) == 0 {
		return Plan{}, fmt.Errorf("plan has no username patterns")
	}

	logging.Info("advisory plan received", "strategy", plan.Strategy,
		"usernames", len(plan.UsernamePatterns), "emails", len(plan.EmailPatterns))
	return plan, nil
}

// Narrate asks the service to write a prose investigation summary from the
// serialized report. Callers fall back to the deterministic markdown
// renderer on error.
func (c *DeepSeekClient) Narrate(ctx context.Context, reportJSON string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("advisory service not configured")
	}

	prompt := fmt.Sprintf(`Generate a professional OSINT investigation report from this data:
%s

Include:
- Executive summary
- All contact methods found
- Platform mapping
- Confidence assessment
- Recommended next steps`, reportJSON)

	return c.complete(ctx, prompt, 0.3)
}

// complete issues one chat completion and returns the message content.
func (c *DeepSeekClient) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	body := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": temperature,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.Warn("advisory API error", "status", resp.StatusCode)
		return "", fmt.Errorf("API error (status %d)", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// stripFences removes a markdown code fence the model may wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
