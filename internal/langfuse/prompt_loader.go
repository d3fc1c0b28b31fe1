package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptLoaderConfig describes where the insights system prompt may come from.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	// SavePath caches the last prompt fetched from Langfuse.
	SavePath string

	// Fallback is used when neither Langfuse nor SavePath yields a prompt.
	Fallback string

	// HTTPClient defaults to a client with a 10s timeout.
	HTTPClient *http.Client
}

// PromptSource names where a loaded prompt came from.
type PromptSource string

const (
	PromptSourceLangfuse PromptSource = "langfuse"
	PromptSourceFile     PromptSource = "file"
	PromptSourceFallback PromptSource = "fallback"
)

// Prompt is a resolved system prompt. Version and Model are only known when
// the prompt came from Langfuse.
type Prompt struct {
	Text    string
	Source  PromptSource
	Version int
	// Model is the "model" key of the prompt config, if set.
	Model string
}

var (
	errLangfuseDisabled = errors.New("langfuse integration disabled")
	errEmptyPrompt      = errors.New("prompt is empty")
	errNoPromptFile     = errors.New("no local prompt file configured")
)

// LoadPrompt tries Langfuse, then the cached file, then the fallback text.
// It fails only when all three come up empty.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.PromptName != "" {
		p, err := fetchPrompt(ctx, cfg)
		switch {
		case err == nil:
			if cacheErr := writePromptCache(cfg.SavePath, p.Text); cacheErr != nil {
				log.Printf("[langfuse] could not cache prompt %q: %v", cfg.PromptName, cacheErr)
			}
			return p, nil
		case !errors.Is(err, errLangfuseDisabled):
			log.Printf("[langfuse] prompt %q unavailable: %v", cfg.PromptName, err)
		}
	}

	text, err := readPromptCache(cfg.SavePath)
	if err == nil {
		return Prompt{Text: text, Source: PromptSourceFile}, nil
	}
	if strings.TrimSpace(cfg.Fallback) != "" {
		return Prompt{Text: cfg.Fallback, Source: PromptSourceFallback}, nil
	}
	return Prompt{}, err
}

type promptResponse struct {
	Type    string          `json:"type"`
	Version int             `json:"version"`
	Prompt  json.RawMessage `json:"prompt"`
	Config  struct {
		Model string `json:"model"`
	} `json:"config"`
}

func promptURL(cfg PromptLoaderConfig) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		u.RawQuery = url.Values{"label": {cfg.PromptLabel}}.Encode()
	}
	return u.String(), nil
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return Prompt{}, errLangfuseDisabled
	}
	endpoint, err := promptURL(cfg)
	if err != nil {
		return Prompt{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr promptResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return Prompt{}, fmt.Errorf("decode prompt response: %w", err)
	}
	text, err := pr.text()
	if err != nil {
		return Prompt{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Prompt{}, errEmptyPrompt
	}
	return Prompt{
		Text:    text,
		Source:  PromptSourceLangfuse,
		Version: pr.Version,
		Model:   pr.Config.Model,
	}, nil
}

// text renders the prompt body. Chat prompts are flattened into
// "ROLE: content" paragraphs and placeholders become {{name}}.
func (pr promptResponse) text() (string, error) {
	switch pr.Type {
	case "", "text":
		var s string
		if err := json.Unmarshal(pr.Prompt, &s); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return s, nil
	case "chat":
		var msgs []struct {
			Type    string `json:"type"`
			Role    string `json:"role"`
			Content string `json:"content"`
			Name    string `json:"name"`
		}
		if err := json.Unmarshal(pr.Prompt, &msgs); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		parts := make([]string, 0, len(msgs))
		for _, m := range msgs {
			content := m.Content
			if m.Type == "placeholder" {
				content = ""
				if m.Name != "" {
					content = "{{" + m.Name + "}}"
				}
			}
			if content == "" {
				continue
			}
			role := m.Role
			if role == "" {
				role = "message"
			}
			parts = append(parts, strings.ToUpper(role)+": "+content)
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", pr.Type)
	}
}

func readPromptCache(path string) (string, error) {
	if path == "" {
		return "", errNoPromptFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt cache: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errEmptyPrompt
	}
	return string(data), nil
}

// writePromptCache writes to a temp file and renames it over path.
func writePromptCache(path, text string) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".prompt-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
