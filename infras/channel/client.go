package channel

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"staysync/config"
	"staysync/infras/metrics"
	"staysync/infras/otel"
	"staysync/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout     = 15 * time.Second
	maxErrorBodySize   = 64 << 10
	otelAttrMethod     = "http.method"
	otelAttrEndpoint   = "http.endpoint"
	otelAttrStatusCode = "http.status_code"
)

// Client performs authenticated JSON calls against the channel manager. It never retries.
type Client interface {
	Request(ctx context.Context, method, endpoint string, body, out any) error
}

type clientImpl struct {
	http    *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	limiter *rate.Limiter
	otel    otel.Otel
}

// NewClient builds the HTTP client from the channel configuration. httpClient may be nil.
func NewClient(cfg *config.Config, httpClient *http.Client, otl otel.Otel) Client {
	timeout := time.Duration(cfg.Channel.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	httpClient.Timeout = timeout

	limit := rate.Inf
	if cfg.Channel.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.Channel.RateLimitPerSecond)
	}

	return &clientImpl{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.Channel.BaseURL, "/"),
		apiKey:  cfg.Channel.APIKey,
		timeout: timeout,
		limiter: rate.NewLimiter(limit, max(cfg.Channel.RateLimitPerSecond, 1)),
		otel:    otl,
	}
}

// operationOf labels a call by method and top-level resource, keeping identifiers out of metrics.
func operationOf(method, endpoint string) string {
	resource, _, _ := strings.Cut(strings.TrimPrefix(endpoint, "/"), "/")
	resource, _, _ = strings.Cut(resource, "?")

	return strings.ToLower(method) + "_" + resource
}

func (c *clientImpl) Request(ctx context.Context, method, endpoint string, body, out any) (err error) {
	operation := operationOf(method, endpoint)

	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".channel."+operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrMethod:   method,
		otelAttrEndpoint: endpoint,
	})

	status := 0
	start := time.Now()

	defer func() {
		metrics.ObserveChannelRequest(operation, status, time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err = c.limiter.Wait(ctx); err != nil {
		return newTransportError(fmt.Errorf("rate limiter: %w", err))
	}

	request, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	response, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("channel request failed")

		return newTransportError(err)
	}
	defer response.Body.Close()

	status = response.StatusCode
	scope.SetAttribute(otelAttrStatusCode, status)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := &ExternalAPIError{Status: status, Detail: parseErrorBody(response)}

		log.Error().
			Int("status", status).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("detail", apiErr.Detail).
			Msg("channel request rejected")

		return apiErr
	}

	if out == nil || status == http.StatusNoContent {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &ExternalAPIError{Status: status, Detail: "invalid response body: " + err.Error()}
	}

	return nil
}

func (c *clientImpl) newRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &ExternalAPIError{Status: 0, Detail: "invalid request body: " + err.Error()}
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, newTransportError(err)
	}

	request.Header.Set(constant.RequestHeaderChannelAPIKey, c.apiKey)
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	return request, nil
}

type errorBody struct {
	Errors *struct {
		Code    string          `json:"code"`
		Title   string          `json:"title"`
		Details json.RawMessage `json:"details"`
	} `json:"errors"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseErrorBody extracts a readable detail from a rejected call, falling back to the status text.
func parseErrorBody(response *http.Response) string {
	fallback := http.StatusText(response.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return fallback
	}

	parsed := errorBody{}
	if err = json.Unmarshal(raw, &parsed); err != nil {
		return fallback
	}

	switch {
	case parsed.Errors != nil && parsed.Errors.Title != "":
		detail := parsed.Errors.Title

		if details := compact(parsed.Errors.Details); details != "" {
			detail += ": " + details
		}

		return detail
	case parsed.Error != "":
		return parsed.Error
	case parsed.Message != "":
		return parsed.Message
	default:
		return fallback
	}
}

func compact(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return constant.Empty
	}

	buffer := bytes.Buffer{}
	if err := json.Compact(&buffer, raw); err != nil {
		return string(raw)
	}

	return buffer.String()
}
