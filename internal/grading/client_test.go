package grading

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapFetcher map[string][]byte

func (f mapFetcher) Fetch(_ context.Context, ref string) ([]byte, string, error) {
	data, ok := f[ref]
	if !ok {
		return nil, "", fmt.Errorf("unknown ref %q", ref)
	}
	return data, "image/jpeg", nil
}

func candidateResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func newTestClient(t *testing.T, url string, fetcher Fetcher) *Client {
	t.Helper()
	return NewClient(Config{
		BaseURL:        url,
		APIKey:         "test-key",
		Model:          "gemini-2.5-flash",
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	}, fetcher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GradeAttachesMaterialsInOrder(t *testing.T) {
	var captured struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		fmt.Fprint(w, candidateResponse("Question 1: fine work [5/5 marks]\nSCORE: 88"))
	}))
	defer srv.Close()

	fetcher := mapFetcher{
		"papers/quiz.pdf":  []byte("paper-bytes"),
		"answers/ada.jpg":  []byte("answer-bytes"),
		"answers/ada2.jpg": []byte("more-bytes"),
	}
	c := newTestClient(t, srv.URL, fetcher)

	res, err := c.Grade(context.Background(), Request{
		StudentName:  "Ada",
		MaterialRefs: []string{"papers/quiz.pdf", "answers/ada.jpg", "answers/ada2.jpg"},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Score)
	assert.Equal(t, 88, *res.Score)
	assert.Contains(t, res.Feedback, "Question 1")

	require.Len(t, captured.Contents, 1)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 4)
	assert.Contains(t, parts[0].Text, "Student: Ada")
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "application/pdf", parts[1].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("paper-bytes")), parts[1].InlineData.Data)
	assert.Equal(t, "image/jpeg", parts[2].InlineData.MimeType)
}

func TestClient_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, candidateResponse("All correct.\nSCORE: 100"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, mapFetcher{"a.jpg": []byte("x")})
	res, err := c.Grade(context.Background(), Request{StudentName: "Sam", MaterialRefs: []string{"a.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.NotNil(t, res.Score)
	assert.Equal(t, 100, *res.Score)
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, mapFetcher{"a.jpg": []byte("x")})
	_, err := c.Grade(context.Background(), Request{StudentName: "Sam", MaterialRefs: []string{"a.jpg"}})
	require.Error(t, err)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.True(t, uerr.Transient())
	// initial attempt plus three retries
	assert.Equal(t, int32(4), calls.Load())
}

func TestClient_PermanentErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"invalid argument"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, mapFetcher{"a.jpg": []byte("x")})
	_, err := c.Grade(context.Background(), Request{StudentName: "Sam", MaterialRefs: []string{"a.jpg"}})
	require.Error(t, err)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.False(t, uerr.Transient())
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_StripsScoreMarkerFromFeedback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse("Question 1: correct [5/5 marks]\nGood work overall.\nSCORE: 87\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, mapFetcher{"a.jpg": []byte("x")})
	res, err := c.Grade(context.Background(), Request{StudentName: "Ada", MaterialRefs: []string{"a.jpg"}})
	require.NoError(t, err)

	require.NotNil(t, res.Score)
	assert.Equal(t, 87, *res.Score)
	assert.Equal(t, "Question 1: correct [5/5 marks]\nGood work overall.", res.Feedback)
	assert.NotContains(t, res.Feedback, "SCORE")
}

func TestClient_NullScoreIsStillSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse("Every page was blank, nothing to grade."))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, mapFetcher{"a.jpg": []byte("x")})
	res, err := c.Grade(context.Background(), Request{StudentName: "Sam", MaterialRefs: []string{"a.jpg"}})
	require.NoError(t, err)
	assert.Nil(t, res.Score)
	assert.NotEmpty(t, res.Feedback)
}

func TestClient_FetchFailureIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called when a fetch fails")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, mapFetcher{})
	_, err := c.Grade(context.Background(), Request{StudentName: "Sam", MaterialRefs: []string{"missing.jpg"}})
	require.Error(t, err)

	var uerr *UpstreamError
	assert.False(t, errors.As(err, &uerr))
}

func TestUpstreamError_OverloadMessageIsTransient(t *testing.T) {
	err := &UpstreamError{Status: 500, Message: `{"error":{"message":"The model is overloaded."}}`}
	assert.True(t, err.Transient())

	plain := &UpstreamError{Status: 500, Message: "internal"}
	assert.False(t, plain.Transient())
}
