// Package webhook posts run summaries to an HTTP endpoint.
package webhook

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/report"
)

// bodyLimit bounds how much of a rejected response ends up in the error.
const bodyLimit = 200

var client = &http.Client{Timeout: 30 * time.Second}

// StatusError is a non-2xx reply from the endpoint.
type StatusError struct {
	Code int
	Body string // first bodyLimit bytes, "..." appended when cut
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = "(empty body)"
	}
	return fmt.Sprintf("endpoint returned %d: %s", e.Code, body)
}

// SendSummary posts s as JSON to the configured URL. Errors name the
// pipeline and outcome of the run that could not be delivered.
func SendSummary(cfg config.Webhook, s report.Summary) error {
	payload, err := s.Payload()
	if err != nil {
		return errors.Wrap(err, "encode summary")
	}
	if err := Send(cfg.URL, payload, cfg.Headers); err != nil {
		return errors.WithMessagef(err, "%s run %s", s.Pipeline, s.Status)
	}
	return nil
}

// Send posts body to url as application/json. Custom headers are applied
// after the default Content-Type, so callers can override it. Header
// values are expanded with os.ExpandEnv to support $VAR secrets.
func Send(url string, body []byte, headers map[string]string) error {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, os.ExpandEnv(v))
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: snippet(resp.Body)}
	}
	return nil
}

func snippet(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, bodyLimit+1))
	s := strings.TrimSpace(string(data))
	if len(data) > bodyLimit {
		s = strings.TrimSpace(string(data[:bodyLimit])) + "..."
	}
	return s
}
