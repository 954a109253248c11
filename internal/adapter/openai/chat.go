package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type ChatClient struct {
	client *openai.Client
	model  string
}

func NewChatClient(apiKey, model string) *ChatClient {
	return &ChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// extract keywords
func (c *ChatClient) ExtractKeywords(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		// Nothing to digest; skip the API call entirely.
		return "", nil
	}

	systemPrompt := `You extract search keywords from a student's question.
	Reply with 3 to 5 short keywords, comma separated, and nothing else.`

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.2,
		MaxTokens:   60,
	})

	if err != nil {
		return "", fmt.Errorf("failed to extract keywords: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// generate solution
func (c *ChatClient) GenerateSolution(ctx context.Context, text string) (string, error) {
	systemPrompt := `You are a patient tutor helping a student with a question they photographed.

	Instructions:
	1. Restate what the question is asking
	2. Work through it step by step
	3. End with the final answer on its own line`

	userPrompt := fmt.Sprintf(`Question:
	%s

	Solution:`, text)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   700,
	})

	if err != nil {
		return "", fmt.Errorf("failed to generate solution: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
