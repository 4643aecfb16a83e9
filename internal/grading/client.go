package grading

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/constants"
)

type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    float64
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// Client grades submissions against a generateContent-style vision
// endpoint, attaching each material file inline.
type Client struct {
	cfg        Config
	fetcher    Fetcher
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, fetcher Fetcher, logger *slog.Logger) *Client {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 2 * time.Second
	}
	return &Client{
		cfg:        cfg,
		fetcher:    fetcher,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		log:        logger,
	}
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

func (c *Client) Grade(ctx context.Context, req Request) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("grading.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"student", req.StudentName,
		"materials", len(req.MaterialRefs),
		"regrade", req.PreviousFeedback != "",
	)

	parts := []contentPart{{Text: BuildGradingPrompt(req)}}
	for _, ref := range req.MaterialRefs {
		data, reported, err := c.fetcher.Fetch(ctx, ref)
		if err != nil {
			c.log.Error("grading.fetch_error", "req_id", rid, "ref", ref, "error", err)
			return Result{}, fmt.Errorf("fetch material %s: %w", ref, err)
		}
		parts = append(parts, contentPart{InlineData: &inlineData{
			MimeType: constants.ResolveContentType(ref, reported),
			Data:     base64.StdEncoding.EncodeToString(data),
		}})
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"role": "user", "parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature": c.cfg.Temperature,
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") +
		"/v1beta/models/" + c.cfg.Model + ":generateContent"

	raw, err := c.postWithRetry(ctx, rid, endpoint, body)
	if err != nil {
		c.log.Error("grading.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error("grading.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return Result{}, fmt.Errorf("decode provider response: %w", err)
	}
	if len(out.Candidates) == 0 {
		c.log.Error("grading.no_candidates", "req_id", rid, "raw", string(raw))
		return Result{}, fmt.Errorf("no candidates in provider response")
	}

	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	feedback := strings.TrimSpace(b.String())
	if feedback == "" {
		return Result{}, fmt.Errorf("empty feedback in provider response")
	}

	score := ExtractScore(feedback)
	if score != nil {
		feedback = StripScoreMarker(feedback)
	}
	c.log.Info("grading.ok",
		"req_id", rid,
		"feedback_len", len(feedback),
		"has_score", score != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Feedback: feedback, Score: score}, nil
}

// postWithRetry sends the request, retrying on rate limits, overload,
// and network failures with exponential backoff. Other provider errors
// fail immediately.
func (c *Client) postWithRetry(ctx context.Context, rid, url string, body map[string]any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr *UpstreamError
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryBaseDelay << (attempt - 1)
			c.log.Warn("grading.retry",
				"req_id", rid, "attempt", attempt,
				"max", c.cfg.MaxRetries, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		raw, uerr := c.post(ctx, url, bs)
		if uerr == nil {
			return raw, nil
		}
		if !uerr.Transient() {
			return nil, uerr
		}
		lastErr = uerr
	}
	return nil, lastErr
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, *UpstreamError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer func(rc io.ReadCloser) {
		if cerr := rc.Close(); cerr != nil {
			c.log.Warn("grading response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: string(raw)}
	}
	return raw, nil
}
