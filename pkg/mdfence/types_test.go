package mdfence_test

import (
	"errors"
	"testing"

	"github.com/vvka-141/mdfence/pkg/mdfence"
)

func TestScanConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    mdfence.ScanConfig
		wantError bool
		errorType error
	}{
		{
			name:      "valid config",
			config:    mdfence.ScanConfig{Root: "."},
			wantError: false,
		},
		{
			name:      "valid config with verbose",
			config:    mdfence.ScanConfig{Root: "/some/tree", Verbose: true},
			wantError: false,
		},
		{
			name:      "missing root",
			config:    mdfence.ScanConfig{},
			wantError: true,
			errorType: mdfence.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("Expected error wrapping %v, got %v", tt.errorType, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
