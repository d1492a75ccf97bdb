package llm

import (
	"context"
	"fmt"

	vertexai "cloud.google.com/go/vertexai/genai"
)

// vertexBackend calls Gemini models served through Vertex AI. Authentication
// uses application default credentials for the project.
type vertexBackend struct {
	client *vertexai.Client
}

func newVertexBackend(ctx context.Context, config *Config) (*vertexBackend, error) {
	if config.ProjectID == "" {
		return nil, fmt.Errorf("project ID is required for Vertex AI")
	}
	location := config.Location
	if location == "" {
		location = defaultVertexLocation
	}

	client, err := vertexai.NewClient(ctx, config.ProjectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}
	return &vertexBackend{client: client}, nil
}

func (b *vertexBackend) complete(ctx context.Context, req request) ([]string, error) {
	model := b.client.GenerativeModel(req.Model)
	model.SetTemperature(req.Temperature)
	if req.System != "" {
		model.SystemInstruction = &vertexai.Content{Parts: []vertexai.Part{vertexai.Text(req.System)}}
	}
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, vertexai.Text(req.Prompt))
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errNoCandidates
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(vertexai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return parts, nil
}

func (b *vertexBackend) close() error {
	return b.client.Close()
}
