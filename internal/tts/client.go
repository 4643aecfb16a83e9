// Package tts turns finalized feedback into spoken audio.
package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/papertalk/papertalk/internal/common"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Client speaks the text-to-speech REST protocol: JSON in, base64 MP3
// out.
type Client struct {
	cfg        common.TTSConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg common.TTSConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()

	body := map[string]any{
		"input":       map[string]any{"text": text},
		"voice":       map[string]any{"name": c.cfg.Voice},
		"audioConfig": map[string]any{"audioEncoding": "MP3"},
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("tts.send_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func(rc io.ReadCloser) {
		if cerr := rc.Close(); cerr != nil {
			c.log.Warn("tts response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tts status %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode tts response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio content: %w", err)
	}

	c.log.Info("tts.ok",
		"text_len", len(text),
		"audio_bytes", len(audio),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return audio, nil
}
