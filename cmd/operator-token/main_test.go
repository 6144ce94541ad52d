package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stpnv0/SafeMeet/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "operator-token-test-secret"

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestRun_IssuesVerifiableToken(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-subject", "reviewer-7", "-role", "admin", "-ttl", "1h"},
		env(map[string]string{"AUTH_JWT_SECRET": testSecret}), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	claims, err := middleware.ParseOperatorToken(testSecret, strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "reviewer-7", claims.Subject)
	assert.Equal(t, middleware.RoleAdmin, claims.Role)
}

func TestRun_SecretFlagOverridesEnv(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-subject", "reviewer-7", "-secret", "flag-secret-value"},
		env(map[string]string{"AUTH_JWT_SECRET": testSecret}), &stdout, &stderr)

	require.Equal(t, 0, code)
	claims, err := middleware.ParseOperatorToken("flag-secret-value", strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleOperator, claims.Role)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		code int
	}{
		{"missing subject", nil, map[string]string{"AUTH_JWT_SECRET": testSecret}, 1},
		{"missing secret", []string{"-subject", "r1"}, nil, 1},
		{"unknown role", []string{"-subject", "r1", "-role", "buyer"}, map[string]string{"AUTH_JWT_SECRET": testSecret}, 1},
		{"bad ttl", []string{"-subject", "r1", "-ttl", "-1h"}, map[string]string{"AUTH_JWT_SECRET": testSecret}, 1},
		{"unknown flag", []string{"-nope"}, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, env(tt.env), &stdout, &stderr)

			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}
