// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the directory service.
// Transport failures (connection refused, timeout) are ordinary
// wrapped errors, not APIErrors — use errors.As to distinguish.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from the service, or the raw
	// response body when the service did not return a structured error.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("roster: HTTP %d: %s", err.StatusCode, err.Message)
}

// IsNotFound reports whether err is a 404 response from the service.
// Callers see this when deleting or updating a record that another
// client already removed.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsValidation reports whether err is a 400 or 422 response: the
// service rejected the payload despite the client-side checks passing.
func IsValidation(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && (apiError.StatusCode == 400 || apiError.StatusCode == 422)
}

// IsServerError reports whether err is a 5xx response from the service.
func IsServerError(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode >= 500
}
