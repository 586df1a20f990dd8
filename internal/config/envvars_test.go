// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import "testing"

func TestExpandEnv(t *testing.T) {
	t.Setenv("CELLAR_TEST_HOME", "/home/sommelier")

	tests := []struct {
		in, want string
	}{
		{"${CELLAR_TEST_HOME}/wines.yaml", "/home/sommelier/wines.yaml"},
		{"${DEFINITELY_NOT_SET_12345}", ""},
		{"plain.yaml", "plain.yaml"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
