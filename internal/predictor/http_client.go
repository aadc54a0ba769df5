package predictor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultTimeout   = 5 * time.Second
	maxResponseBytes = 1 << 20
)

// HTTPClient calls POST {baseURL}/predict on the remote model service.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Name() string { return "remote" }

func (c *HTTPClient) Predict(ctx context.Context, features Features) (*Result, error) {
	if c.baseURL == "" {
		return nil, configError("model service URL is not configured", nil)
	}
	base, err := url.Parse(c.baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, configError("model service URL is invalid", err)
	}
	endpoint := base.JoinPath("predict").String()

	body, err := json.Marshal(features)
	if err != nil {
		return nil, connectionError("failed to encode model service request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, configError("model service URL is invalid", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError("model service request timed out", err)
		}
		return nil, connectionError("failed to connect to model service", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError("model service response timed out", err)
		}
		return nil, connectionError("failed to read model service response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(fmt.Sprintf("model service returned status %d", resp.StatusCode), nil)
	}

	return decodeResult(raw)
}

func decodeResult(raw []byte) (*Result, error) {
	if !json.Valid(raw) {
		return nil, responseError("model service returned invalid JSON", nil)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return nil, responseError("model service response must be a JSON object", err)
	}

	predRaw, okPred := payload["prediction"]
	recRaw, okRec := payload["recommendation"]
	if !okPred || !okRec {
		return nil, responseError("model service response missing prediction or recommendation", nil)
	}

	var result Result
	if string(predRaw) == "null" {
		return nil, responseError("model service prediction must be a number", nil)
	}
	if err := json.Unmarshal(predRaw, &result.Prediction); err != nil {
		return nil, responseError("model service prediction must be a number", err)
	}
	if err := json.Unmarshal(recRaw, &result.Recommendation); err != nil || string(recRaw) == "null" {
		return nil, responseError("model service recommendation must be a string", err)
	}
	if strings.TrimSpace(result.Recommendation) == "" {
		return nil, responseError("model service recommendation must not be empty", nil)
	}

	return &result, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
