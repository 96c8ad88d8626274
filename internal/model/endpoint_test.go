package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
		wantErr  bool
	}{
		{"GET", MethodGet, false},
		{"get", MethodGet, false},
		{" Post ", MethodPost, false},
		{"PUT", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		m, err := ParseMethod(tt.input)
		if tt.wantErr {
			var methodErr *InvalidMethodError
			require.ErrorAs(t, err, &methodErr, "ParseMethod(%q)", tt.input)
			assert.Equal(t, tt.input, methodErr.Method)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, m)
	}
}

func TestNewEndpointSpec(t *testing.T) {
	spec, err := NewEndpointSpec("/dashboard/stats/", "get", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"dashboard", "stats"}, spec.Path)
	assert.Equal(t, MethodGet, spec.Method)
	assert.False(t, spec.Protected)
	assert.Equal(t, "dashboard/stats", spec.RawPath())
}

func TestNewEndpointSpecRejectsBadPaths(t *testing.T) {
	for _, raw := range []string{"", "/", "a//b", "../etc", "a/./b", `a\b`} {
		_, err := NewEndpointSpec(raw, "GET", false)
		assert.True(t, errors.Is(err, ErrUsage), "path %q should be a usage error, got %v", raw, err)
	}
}

func TestNewEndpointSpecChecksPathBeforeMethod(t *testing.T) {
	_, err := NewEndpointSpec("ok/path", "DELETE", true)
	var methodErr *InvalidMethodError
	assert.ErrorAs(t, err, &methodErr)
}

func TestSchemaIdentifier(t *testing.T) {
	id := NewSchemaIdentifier("DashboardStats")

	assert.Equal(t, "DashboardStatsSchema", id.String())
	assert.Equal(t, "DashboardStats", id.Base())
	assert.Equal(t, id.String(), id.Ref())
}

func TestWriteErrorUnwraps(t *testing.T) {
	inner := errors.New("disk full")
	err := &WriteError{Path: "app/api/x/route.ts", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "app/api/x/route.ts")
}
