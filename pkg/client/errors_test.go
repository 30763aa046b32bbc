package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "status only",
			err: &APIError{
				StatusCode: 502,
				ErrorClass: ErrorClassServer,
				Message:    "502 Bad Gateway",
			},
			want: "fullfield server error (status 502): 502 Bad Gateway",
		},
		{
			name: "wrapped error",
			err: &APIError{
				ErrorClass: ErrorClassNetwork,
				Message:    "request failed",
				Err:        fmt.Errorf("dial tcp: connection refused"),
			},
			want: "fullfield network error (status 0): request failed: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := &APIError{ErrorClass: ErrorClassNetwork, Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		statusCode int
		want       ErrorClass
	}{
		{400, ErrorClassClient},
		{401, ErrorClassClient},
		{404, ErrorClassClient},
		{429, ErrorClassRateLimit},
		{500, ErrorClassServer},
		{503, ErrorClassServer},
		{200, ""},
	}

	for _, tt := range tests {
		if got := classifyStatus(tt.statusCode); got != tt.want {
			t.Errorf("classifyStatus(%d) = %q, want %q", tt.statusCode, got, tt.want)
		}
	}
}
