// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bureau-foundation/staffdesk/lib/clock"
)

// Config holds configuration for creating a directory service Client.
type Config struct {
	// BaseURL is the root URL for API requests, e.g.
	// "http://localhost:3333". Required. Must use http or https.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.Fake() in tests for deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed REST client for the employee directory service.
// It performs no retries and no caching: a call either succeeds,
// returns a *APIError for a non-2xx status, or returns a wrapped
// transport error. Callers decide how to surface failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a directory service client from the given
// configuration. Returns an error if the base URL is missing or not an
// http/https URL.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("roster: BaseURL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("roster: invalid BaseURL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("roster: BaseURL must use http or https (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		clock:      clk,
		logger:     logger,
	}, nil
}

// ListEmployees fetches the full employee collection.
func (client *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := client.get(ctx, "/employees", &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee creates a new employee record and returns the
// server-populated record (with assigned ID and hire date).
func (client *Client) CreateEmployee(ctx context.Context, payload EmployeePayload) (Employee, error) {
	var created Employee
	if err := client.post(ctx, "/employees", payload, &created); err != nil {
		return Employee{}, err
	}
	return created, nil
}

// UpdateEmployee replaces the record with the given ID and returns the
// updated record as stored by the service.
func (client *Client) UpdateEmployee(ctx context.Context, employeeID string, payload EmployeePayload) (Employee, error) {
	var updated Employee
	if err := client.put(ctx, "/employees/"+url.PathEscape(employeeID), payload, &updated); err != nil {
		return Employee{}, err
	}
	return updated, nil
}

// DeleteEmployee removes the record with the given ID.
func (client *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return client.delete(ctx, "/employees/"+url.PathEscape(employeeID))
}

// ListDepartments fetches the department reference list.
func (client *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var departments []Department
	if err := client.get(ctx, "/departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// do executes a request against the directory service. The path is
// relative to the base URL. For requests with a body, the value is
// JSON-encoded (pass nil for no body).
//
// Returns the response body as raw bytes. On non-2xx responses,
// returns an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	requestURL := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("roster: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("roster: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	started := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("roster: %s %s: %w", method, requestURL, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("roster: reading response body: %w", err)
	}

	client.logger.Debug("directory service call",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"duration", client.clock.Now().Sub(started),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}
	return body, nil
}

// maxResponseBytes caps response body reads. The employee list for
// even a large installation is far below this; anything bigger is a
// misbehaving server.
const maxResponseBytes = 8 << 20

// get is a convenience method for GET requests that decode the
// response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("roster: decoding response: %w", err)
	}
	return nil
}

// post is a convenience method for POST requests that decode the
// response into result.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("roster: decoding response: %w", err)
	}
	return nil
}

// put is a convenience method for PUT requests that decode the
// response into result.
func (client *Client) put(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("roster: decoding response: %w", err)
	}
	return nil
}

// delete is a convenience method for DELETE requests. The response
// body is discarded — the service returns an empty acknowledgement.
func (client *Client) delete(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodDelete, path, nil)
	return err
}

// parseAPIError builds an *APIError from a status code and response
// body. The service returns {"message": "..."} bodies for structured
// errors; anything else is carried verbatim.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}
	return apiError
}
