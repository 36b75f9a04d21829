package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "invalid input", http.StatusBadRequest)

	if err.Code != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, err.Code)
	}
	if err.Message != "invalid input" {
		t.Errorf("expected message 'invalid input', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("worksheet is corrupt")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeInvalidInput,
				Message: "No file provided",
			},
			expected: "INVALID_INPUT: No file provided",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("worksheet is corrupt"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: worksheet is corrupt)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestAppError_StatusCode(t *testing.T) {
	err := New(CodeTimeout, "timed out", http.StatusGatewayTimeout)
	if err.StatusCode() != http.StatusGatewayTimeout {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusGatewayTimeout)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(CodeInvalidInput, "invalid input", http.StatusBadRequest)
	details := map[string]any{
		"field": "file",
		"error": "missing multipart part",
	}

	err = err.WithDetails(details)

	if err.Details["field"] != "file" {
		t.Errorf("expected field 'file', got %v", err.Details["field"])
	}
	if err.Details["error"] != "missing multipart part" {
		t.Errorf("expected error 'missing multipart part', got %v", err.Details["error"])
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("No file provided")

	if err.Code != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestInternal(t *testing.T) {
	originalErr := errors.New("zip: not a valid zip file")
	err := Internal("failed to parse upload", originalErr)

	if err.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, err.HTTPStatus)
	}
	if err.Err != originalErr {
		t.Errorf("expected wrapped error to be originalErr")
	}
}

func TestTimeout(t *testing.T) {
	err := Timeout("request timed out")

	if err.Code != CodeTimeout {
		t.Errorf("expected code %s, got %s", CodeTimeout, err.Code)
	}
	if err.HTTPStatus != http.StatusGatewayTimeout {
		t.Errorf("expected status %d, got %d", http.StatusGatewayTimeout, err.HTTPStatus)
	}
}

func TestPayloadTooLarge(t *testing.T) {
	err := PayloadTooLarge("upload exceeds size limit")

	if err.Code != CodeTooLarge {
		t.Errorf("expected code %s, got %s", CodeTooLarge, err.Code)
	}
	if err.HTTPStatus != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status %d, got %d", http.StatusRequestEntityTooLarge, err.HTTPStatus)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := InvalidInput("No file provided")
	regularErr := errors.New("regular error")

	if !IsAppError(appErr) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if IsAppError(regularErr) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := InvalidInput("No file provided")
	regularErr := errors.New("regular error")

	result := AsAppError(appErr)
	if result != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result = AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	err := InvalidInput("No file provided").WithDetails(map[string]any{"field": "file"})
	data := err.ToJSON()

	if len(data) == 0 {
		t.Errorf("ToJSON() should return non-empty JSON")
	}

	jsonStr := string(data)
	if !contains(jsonStr, "INVALID_INPUT") {
		t.Errorf("ToJSON() should contain error code")
	}
	if !contains(jsonStr, "No file provided") {
		t.Errorf("ToJSON() should contain error message")
	}
}

func contains(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
