// Package docai integrates with a Document AI style entity-extraction
// service over its JSON REST endpoint.
package docai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"receipt_keeper/internal/logger"
)

const requestTimeout = 10 * time.Second

// Entity is one confidence-scored field extracted from a document.
type Entity struct {
	Type        string  `json:"type"`
	MentionText string  `json:"mentionText"`
	Confidence  float64 `json:"confidence"`
}

// Config locates the processor and carries its credential.
type Config struct {
	// Endpoint overrides the computed URL; used in tests and for
	// self-hosted gateways.
	Endpoint    string
	ProjectID   string
	Location    string
	ProcessorID string
	AccessToken string
}

// Client calls the document-extraction service.
type Client struct {
	endpoint    string
	accessToken string
	client      *http.Client
	log         *logger.Logger
}

// NewClient builds a client for the configured processor.
func NewClient(cfg Config, log *logger.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(
			"https://%s-documentai.googleapis.com/v1/projects/%s/locations/%s/processors/%s:process",
			cfg.Location, cfg.ProjectID, cfg.Location, cfg.ProcessorID,
		)
	}
	return &Client{
		endpoint:    endpoint,
		accessToken: cfg.AccessToken,
		client:      &http.Client{Timeout: requestTimeout},
		log:         log,
	}
}

type rawDocument struct {
	Content  string `json:"content"` // base64
	MimeType string `json:"mimeType"`
}

type processRequest struct {
	RawDocument rawDocument `json:"rawDocument"`
}

type processResponse struct {
	Document struct {
		Entities []Entity `json:"entities"`
	} `json:"document"`
}

// Process submits the document bytes and returns the raw entity stream.
func (c *Client) Process(ctx context.Context, content []byte, mimeType string) ([]Entity, error) {
	body, err := json.Marshal(processRequest{
		RawDocument: rawDocument{
			Content:  base64.StdEncoding.EncodeToString(content),
			MimeType: mimeType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal process request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create process request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("process document request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the body for the log; upstream
		// error details must not reach the caller.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if c.log != nil {
			c.log.Errorw("docai_process_failed", "status", resp.StatusCode, "body", string(snippet))
		}
		return nil, fmt.Errorf("document processing failed: unexpected status %d", resp.StatusCode)
	}

	var parsed processResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode process response: %w", err)
	}
	return parsed.Document.Entities, nil
}
