package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonetui/tone/internal/testutils"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		envs map[string]string
		file string
		want func(t *testing.T, got Config)
	}{
		{
			name: "defaults",
			want: func(t *testing.T, got Config) {
				assert.Equal(t, "", got.Endpoint)
				assert.False(t, got.Readonly)
				assert.Equal(t, 10*time.Second, got.Refresh)
				assert.Equal(t, "info", got.LogLevel)
				assert.False(t, got.Debug)
			},
		},
		{
			name: "flags",
			args: []string{
				"--endpoint", "http://front:2633/RPC2",
				"--readonly",
				"--refresh", "30s",
				"--log-level", "debug",
			},
			want: func(t *testing.T, got Config) {
				assert.Equal(t, "http://front:2633/RPC2", got.Endpoint)
				assert.True(t, got.Readonly)
				assert.Equal(t, 30*time.Second, got.Refresh)
				assert.Equal(t, "debug", got.LogLevel)
			},
		},
		{
			name: "environment variables",
			envs: map[string]string{
				"TONE_ENDPOINT": "http://env:2633/RPC2",
				"TONE_READONLY": "true",
				"TONE_REFRESH":  "1m",
			},
			want: func(t *testing.T, got Config) {
				assert.Equal(t, "http://env:2633/RPC2", got.Endpoint)
				assert.True(t, got.Readonly)
				assert.Equal(t, time.Minute, got.Refresh)
			},
		},
		{
			name: "flag beats environment variable",
			args: []string{"--endpoint", "http://flag:2633/RPC2"},
			envs: map[string]string{"TONE_ENDPOINT": "http://env:2633/RPC2"},
			want: func(t *testing.T, got Config) {
				assert.Equal(t, "http://flag:2633/RPC2", got.Endpoint)
			},
		},
		{
			name: "config file",
			file: "endpoint: http://file:2633/RPC2\nrefresh: 45s\nreadonly: true\n",
			want: func(t *testing.T, got Config) {
				assert.Equal(t, "http://file:2633/RPC2", got.Endpoint)
				assert.Equal(t, 45*time.Second, got.Refresh)
				assert.True(t, got.Readonly)
			},
		},
		{
			name: "disable auto refresh",
			args: []string{"--refresh", "0s"},
			want: func(t *testing.T, got Config) {
				assert.Zero(t, got.Refresh)
			},
		},
		{
			name: "version",
			args: []string{"-v"},
			want: func(t *testing.T, got Config) {
				assert.True(t, got.Version)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.ResetEnv(t)
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			args := tt.args
			if tt.file != "" {
				path := filepath.Join(t.TempDir(), "tone.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))
				args = append(args, "--config", path)
			}

			got, err := Parse(&bytes.Buffer{}, args)
			require.NoError(t, err)
			tt.want(t, got)
		})
	}
}

func TestParse_Help(t *testing.T) {
	buf := new(bytes.Buffer)
	_, err := Parse(buf, []string{"--help"})
	require.ErrorIs(t, err, ff.ErrHelp)
	assert.Contains(t, buf.String(), "endpoint")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	_, err := Parse(buf, []string{"--log-level", "noisy"})
	require.Error(t, err)
}
