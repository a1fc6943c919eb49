package nspd

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cadastral-lookup-api/internal/config"
)

// maxResponseSize caps how much of the upstream body is read
const maxResponseSize = 10 * 1024 * 1024

// HTTPError is returned when the provider answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("NSPD API error: %d", e.StatusCode)
}

// ErrEmptyResponse is returned when the provider sends no JSON payload
var ErrEmptyResponse = errors.New("empty response from NSPD")

// Client queries the NSPD geoportal search API
type Client struct {
	httpClient  *http.Client
	urlTemplate string
	userAgent   string
	accept      string
	referer     string
}

// NewClient creates a client from upstream configuration
func NewClient(cfg config.UpstreamConfig) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		// The provider's chain is signed by a national CA missing from stock trust stores
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		urlTemplate: cfg.URLTemplate,
		userAgent:   cfg.UserAgent,
		accept:      cfg.Accept,
		referer:     cfg.Referer,
	}
}

// BuildURL substitutes the escaped cadastral number into the URL template
func (c *Client) BuildURL(cadastralNumber string) string {
	return strings.ReplaceAll(c.urlTemplate, config.CadastralNumberTemplate, url.QueryEscape(cadastralNumber))
}

// CloseIdleConnections releases pooled connections to the provider
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Search issues a single GET for the cadastral number and decodes the payload
func (c *Client) Search(ctx context.Context, cadastralNumber string) (*SearchResponse, error) {
	endpoint := c.BuildURL(cadastralNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build NSPD request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	}
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}

	start := time.Now()
	logrus.WithFields(logrus.Fields{
		"cadastral_number": cadastralNumber,
		"url":              endpoint,
	}).Debug("NSPD request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"cadastral_number": cadastralNumber,
			"error":            err.Error(),
			"latency_ms":       time.Since(start).Milliseconds(),
		}).Warn("NSPD request failed")
		return nil, err
	}
	defer resp.Body.Close()

	fields := logrus.Fields{
		"cadastral_number": cadastralNumber,
		"status_code":      resp.StatusCode,
		"latency_ms":       time.Since(start).Milliseconds(),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		logrus.WithFields(fields).Warn("NSPD returned error status")
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read NSPD response: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrEmptyResponse
	}

	var payload SearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		logrus.WithFields(fields).WithError(err).Warn("NSPD response is not valid JSON")
		return nil, fmt.Errorf("failed to decode NSPD response: %w", err)
	}

	fields["features"] = len(payload.Features())
	logrus.WithFields(fields).Debug("NSPD response")

	return &payload, nil
}
