// Package langfuse provides a lightweight HTTP client for Langfuse tracing.
// It uses the Langfuse HTTP ingestion API to create traces and scores.
// If not configured, the client operates as a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// asyncTimeout is the maximum time to wait for async Langfuse API calls.
const asyncTimeout = 5 * time.Second

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score for an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush waits for queued sends and returns the errors of those that failed.
	Flush(ctx context.Context) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID        string         // Optional: override trace ID (generates UUID if empty)
	UserID    string         // User identifier
	SessionID string         // Optional: groups traces of one session
	Name      string         // Trace name (e.g., "energy-insights")
	Input     any            // Serializable input context
	Output    any            // Serializable output result
	Tags      []string       // Optional tags
	Metadata  map[string]any // Optional metadata
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID  string         // ID of the trace to score
	Name     string         // Score name (e.g., "user_rating")
	Value    float64        // Numeric score value
	Comment  string         // Optional comment
	Metadata map[string]any // Optional metadata
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
	// Release tags every trace with the deployed version.
	Release string
}

type client struct {
	cfg        Config
	enabled    bool
	httpClient *http.Client

	wg     sync.WaitGroup
	mu     sync.Mutex
	failed []error
}

// NewClient creates a Langfuse client. Missing credentials yield a disabled no-op client.
func NewClient(cfg Config) Client {
	enabled := cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""

	switch {
	case enabled:
		log.Printf("[langfuse] enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)
	case cfg.BaseURL == "":
		log.Println("[langfuse] disabled: LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		log.Println("[langfuse] disabled: LANGFUSE_PUBLIC_KEY is empty")
	default:
		log.Println("[langfuse] disabled: LANGFUSE_SECRET_KEY is empty")
	}

	return &client{
		cfg:     cfg,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.cfg.Environment != "" {
		metadata["environment"] = c.cfg.Environment
	}

	c.enqueue(newEvent("trace-create", traceBody{
		ID:        traceID,
		Name:      in.Name,
		UserID:    in.UserID,
		SessionID: in.SessionID,
		Release:   c.cfg.Release,
		Input:     in.Input,
		Output:    in.Output,
		Tags:      in.Tags,
		Metadata:  metadata,
	}))

	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return errors.New("langfuse: score requires a trace ID")
	}

	c.enqueue(newEvent("score-create", scoreBody{
		ID:       uuid.New().String(),
		TraceID:  in.TraceID,
		Name:     in.Name,
		Value:    in.Value,
		Comment:  in.Comment,
		Metadata: in.Metadata,
	}))
	return nil
}

func (c *client) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err := errors.Join(c.failed...)
	c.failed = nil
	return err
}

func (c *client) enqueue(event ingestionEvent) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			log.Printf("[langfuse] async %s send failed: %v", event.Type, err)
			c.mu.Lock()
			c.failed = append(c.failed, err)
			c.mu.Unlock()
		}
	}()
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := c.cfg.BaseURL + "/api/public/ingestion"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}

	return nil
}

func newEvent(eventType string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// Langfuse ingestion API types

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Release   string         `json:"release,omitempty"`
	Input     any            `json:"input,omitempty"`
	Output    any            `json:"output,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID       string         `json:"id"`
	TraceID  string         `json:"traceId"`
	Name     string         `json:"name"`
	Value    float64        `json:"value"`
	Comment  string         `json:"comment,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
