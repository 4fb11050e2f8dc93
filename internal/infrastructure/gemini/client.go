package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devmatch/backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateIcebreakers produces a few opening lines one matched developer
// could send to the other, based on their skills and project interests.
func (c *Client) GenerateIcebreakers(ctx context.Context, user1, user2 *domain.User) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 short icebreaker messages for two software developers who
		just matched on a developer collaboration platform.
		Developer 1 skills: %v, project interests: %v, tech stacks: %v
		Developer 2 skills: %v, project interests: %v, tech stacks: %v

		Task: Create 3 distinct opening lines Developer 1 could send to
		Developer 2. Focus on shared technologies or interesting contrasts.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`,
		user1.Skills, user1.ProjectInterests, user1.TechStacks,
		user2.Skills, user2.ProjectInterests, user2.TechStacks,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var icebreakers []string
	if err := json.Unmarshal([]byte(responseText), &icebreakers); err != nil {
		// Fallback if JSON parsing fails - just return raw text split by newlines
		lines := strings.Split(responseText, "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				icebreakers = append(icebreakers, line)
			}
		}
		if len(icebreakers) == 0 {
			return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
		}
	}

	return icebreakers, nil
}
