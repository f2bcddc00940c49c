package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/civilsim/ansys-extract/internal/extract"
)

// Extract implements extract.FieldExtractor using text-only chat/completions
// against an OpenRouter-compatible endpoint.
func (c *Client) Extract(ctx context.Context, reportText string) (extract.RawFieldSet, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(reportText),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": buildPrompt(reportText)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: decode completion: %v", extract.ErrMalformedResponse, err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: no choices in completion", extract.ErrMalformedResponse)
	}

	content := extract.StripCodeFence(cc.Choices[0].Message.Content)

	cleaned, touched, err := extract.SanitizeMapping([]byte(content))
	if err != nil {
		c.log.Error("extract.sanitize_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: %v", extract.ErrMalformedResponse, err)
	}
	if len(touched) > 0 {
		c.log.Warn("extract.sanitize_applied", "req_id", rid, "touched", touched)
	}

	if err := extract.ValidateJSONAgainstSchema(extract.BuildFieldJSONSchema(), cleaned); err != nil {
		c.log.Error("extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: %v", extract.ErrMalformedResponse, err)
	}

	fields, err := extract.DecodeFieldSet(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extract.ErrMalformedResponse, err)
	}

	known := 0
	for _, v := range fields {
		if !v.IsUnknown() {
			known++
		}
	}
	c.log.Info("extract.ok",
		"req_id", rid,
		"fields", len(fields),
		"known", known,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", extract.ErrBackendUnavailable, err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("openrouter response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d: %s", extract.ErrBackendAuth, resp.StatusCode, raw)
	default:
		// 429s and 5xx, but also request-shape rejections: all of these
		// would hit every document in the batch the same way
		return nil, fmt.Errorf("%w: status %d: %s", extract.ErrBackendUnavailable, resp.StatusCode, raw)
	}
}
