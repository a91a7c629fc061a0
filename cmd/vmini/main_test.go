package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/internal/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		skip []string
	}{
		{
			name: "initial",
			args: []string{"render", "--quiet"},
			want: []string{"count is 0", "Hello vmini!", `onclick="[handler]"`},
			skip: []string{"data-vmini-id"},
		},
		{
			name: "after clicks",
			args: []string{"render", "--clicks=3", "--quiet"},
			want: []string{"count is 3", "Congratulations"},
		},
		{
			name: "with ids",
			args: []string{"render", "--ids", "--quiet"},
			want: []string{`data-vmini-id="`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, s := range tt.skip {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderSummary(t *testing.T) {
	_, errOut, err := execute(t, "render", "--clicks=1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "2 render passes")
	assert.Contains(t, errOut, "1 live listeners")
	assert.Contains(t, errOut, "🎉")
}

func TestRenderDemo(t *testing.T) {
	res, err := renderDemo(2, false, newLogger(defaultConfig(t), &bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Renders)
	assert.Equal(t, 1, res.Listeners)
	assert.Equal(t, len(res.HTML), res.Size)

	_, err = renderDemo(-1, false, newLogger(defaultConfig(t), &bytes.Buffer{}))
	assert.Equal(t, "E401", errors.Code(err), "negative clicks")
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "render", "--config", dir)
	assert.Equal(t, "E201", errors.Code(err), "missing config")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "vmini.json"), []byte(`{"log":{"format":"xml"}}`), 0644))
	_, _, err = execute(t, "render", "--config", dir)
	assert.Equal(t, "E202", errors.Code(err), "invalid config")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)

	cfg, err := config.LoadFile(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Dev.Port)

	_, _, err = execute(t, "init", dir)
	assert.Equal(t, "E401", errors.Code(err), "existing config without --force")

	_, _, err = execute(t, "init", dir, "--yaml", "--force")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, config.YAMLConfigFileName))

	// The generated file is accepted by the other commands.
	_, _, err = execute(t, "render", "--config", dir, "--quiet")
	assert.NoError(t, err)
}

func TestVersionShort(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version, strings.TrimSpace(out))
}

func TestNewS3Client(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	t.Setenv("AWS_CONFIG_FILE", missing)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", missing)
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ENDPOINT_URL", "")
	t.Setenv("AWS_ENDPOINT_URL_S3", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")

	tests := []struct {
		name         string
		cfg          config.ExportConfig
		wantRegion   string
		wantEndpoint string
	}{
		{"default region", config.ExportConfig{Bucket: "snaps"}, "us-east-1", ""},
		{"configured region", config.ExportConfig{Bucket: "snaps", Region: "eu-west-1"}, "eu-west-1", ""},
		{"custom endpoint", config.ExportConfig{Bucket: "snaps", Endpoint: "http://localhost:9000"}, "us-east-1", "http://localhost:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := newS3Client(context.Background(), tt.cfg)
			require.NoError(t, err)

			opts := client.Options()
			assert.Equal(t, tt.wantRegion, opts.Region)
			assert.Equal(t, tt.wantEndpoint, aws.ToString(opts.BaseEndpoint))
			assert.Equal(t, tt.wantEndpoint != "", opts.UsePathStyle)

			creds, err := opts.Credentials.Retrieve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "AKID", creds.AccessKeyID)
		})
	}
}

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.New()
}
