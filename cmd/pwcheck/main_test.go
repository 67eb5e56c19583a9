package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// pinEnv fixes every PWCHECK_* variable so ambient settings cannot leak in.
func pinEnv(t *testing.T) {
	t.Helper()
	for key, value := range map[string]string{
		"PWCHECK_ENV":           "production",
		"PWCHECK_MODE":          "both",
		"PWCHECK_MIN_LENGTH":    "6",
		"PWCHECK_PARALLEL":      "false",
		"PWCHECK_WORKERS":       "0",
		"PWCHECK_LOGGER_LEVEL":  "warn",
		"PWCHECK_LOGGER_FORMAT": "text",
	} {
		t.Setenv(key, value)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		code  int
		want  []string
	}{
		{
			name: "both modes",
			args: []string{"ab", "Abcdef1"},
			code: exitRejected,
			want: []string{
				`failfast   "ab": at least 6 characters`,
				`accumulate "ab": at least 6 characters, at least one capital letter, at least one number`,
				`failfast   "Abcdef1": ok`,
				`accumulate "Abcdef1": ok`,
			},
		},
		{
			name: "fail-fast only",
			args: []string{"-mode", "failfast", "abcdef"},
			code: exitRejected,
			want: []string{`failfast   "abcdef": at least one capital letter`},
		},
		{
			name: "accumulating in parallel",
			args: []string{"-mode", "accumulate", "-parallel", "Abcdef"},
			code: exitRejected,
			want: []string{`accumulate "Abcdef": at least one number`},
		},
		{
			name:  "stdin",
			args:  []string{"-mode", "accumulate", "-min", "3"},
			stdin: "Ab1\nxy\n",
			code:  exitRejected,
			want: []string{
				`accumulate "Ab1": ok`,
				`accumulate "xy": at least 3 characters, at least one capital letter, at least one number`,
			},
		},
		{
			name: "all accepted",
			args: []string{"Abcdef1"},
			code: exitOK,
			want: []string{`failfast   "Abcdef1": ok`, `accumulate "Abcdef1": ok`},
		},
		{
			name: "bad mode",
			args: []string{"-mode", "sometimes", "ab"},
			code: exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinEnv(t)
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)

			assert.Equal(t, tt.code, code, stderr.String())
			if tt.want != nil {
				assert.Equal(t, tt.want, strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n"))
			}
		})
	}
}

func TestRun_IgnoresAmbientEnv(t *testing.T) {
	pinEnv(t)
	t.Setenv("MODE", "failfast")
	t.Setenv("MIN_LENGTH", "2")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"ab"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitRejected, code, stderr.String())
	assert.Equal(t, []string{
		`failfast   "ab": at least 6 characters`,
		`accumulate "ab": at least 6 characters, at least one capital letter, at least one number`,
	}, strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n"))
}
