package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"signalrelay/internal/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSignCommand(t *testing.T) {
	body := `{"ticker":"AAPL","signal":"BUY"}`
	out, err := run(t, "", "sign", "--secret", "k", body)
	require.NoError(t, err)
	assert.Equal(t, webhook.SignHex("k", []byte(body))+"\n", out)

	out, err = run(t, body, "sign", "--secret", "k")
	require.NoError(t, err)
	assert.Equal(t, webhook.SignHex("k", []byte(body))+"\n", out)
}

func TestConfigValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("webhook:\n  secret: abc\ntelegram:\n  chat-id: \"42\"\n"), 0o644))

	out, err := run(t, "", "config", "validate", "--config", good)
	require.NoError(t, err)
	assert.Contains(t, out, "config ok")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("broker:\n  kind: ib\n"), 0o644))
	_, err = run(t, "", "config", "validate", "--config", bad)
	assert.Error(t, err)
}
