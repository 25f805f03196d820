package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxErrorBody = 64 << 10

type httpClient struct {
	baseURL string
	fast    *http.Client
	slow    *http.Client
	log     *zap.Logger
}

// newHTTPClient builds the shared transport. Calls that wait on content
// synthesis go through slow.
func newHTTPClient(baseURL string, timeout, slowTimeout time.Duration, log *zap.Logger) *httpClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		fast:    &http.Client{Timeout: timeout},
		slow:    &http.Client{Timeout: slowTimeout},
		log:     log,
	}
}

func (c *httpClient) do(ctx context.Context, hc *http.Client, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.log.Warn("content api unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("content api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
