package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

type openAIClient struct {
	model  string
	apiKey string
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func (o *openAIClient) Name() string { return "openai" }

func (o *openAIClient) Generate(ctx context.Context, request Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	body := openAIRequest{Model: o.model}
	for _, msg := range request.Messages {
		body.Messages = append(body.Messages, openAIMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", upstreamError(o.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(payload))
	if err != nil {
		return "", upstreamError(o.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", upstreamError(o.Name(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", upstreamError(o.Name(), err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", upstreamStatusError(o.Name(), resp.StatusCode, string(respBody))
	}

	var parsed openAIResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", upstreamError(o.Name(), err)
	}
	if len(parsed.Choices) == 0 {
		return "", upstreamError(o.Name(), fmt.Errorf("empty choice list in response"))
	}

	return parsed.Choices[0].Message.Content, nil
}
