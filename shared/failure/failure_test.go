package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"stayadmin/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Kind:    failure.KindValidation,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		kind    failure.Kind
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "AlreadyCancelled",
			failure: failure.AlreadyCancelled,
			code:    http.StatusConflict,
			kind:    failure.KindAlreadyCancelled,
			message: "booking is already cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Kind: failure.KindValidation, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}
			if *f != *tt.expected.(*failure.Failure) {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{"BadRequestFromString", failure.BadRequestFromString("note is required"), http.StatusBadRequest, failure.KindValidation, "note is required"},
		{"InvalidState", failure.InvalidState("slip is already verified"), http.StatusConflict, failure.KindInvalidState, "slip is already verified"},
		{"Unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, failure.KindUnauthorized, "token expired"},
		{"NotFound", failure.NotFound("booking not found"), http.StatusNotFound, failure.KindNotFound, "booking not found"},
		{"Forbidden", failure.Forbidden("Access denied"), http.StatusForbidden, failure.KindForbidden, "Access denied"},
		{"InternalError", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, failure.KindInternal, "boom"},
		{"StorageError", failure.StorageError(errors.New("connection reset")), http.StatusServiceUnavailable, failure.KindStorage, "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, f.Kind)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestStorageError_KeepsExistingFailure(t *testing.T) {
	inner := failure.InvalidState("slip is already verified")
	wrapped := fmt.Errorf("failed to verify slip: %w", inner)

	if got := failure.StorageError(wrapped); got != wrapped {
		t.Errorf("expected failure to pass through, got %v", got)
	}
	if failure.StorageError(nil) != nil {
		t.Error("expected nil for nil input")
	}
	if got := failure.StorageError(failure.AlreadyCancelled); !errors.Is(got, failure.AlreadyCancelled) {
		t.Errorf("expected AlreadyCancelled to be preserved, got %v", got)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("wrap: %w", failure.InvalidState("test")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("failed to cancel booking: %w", failure.AlreadyCancelled)

	if !failure.IsKind(wrapped, failure.KindAlreadyCancelled) {
		t.Error("expected wrapped AlreadyCancelled to match its kind")
	}
	if failure.IsKind(wrapped, failure.KindInvalidState) {
		t.Error("expected AlreadyCancelled not to match InvalidState")
	}
	if failure.IsKind(nil, failure.KindInternal) {
		t.Error("expected nil error to match no kind")
	}
	if failure.GetKind(errors.New("plain")) != failure.KindInternal {
		t.Error("expected plain errors to be internal")
	}
}
