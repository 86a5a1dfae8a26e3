package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/subscription/status":
			_, _ = fmt.Fprint(w, `{"isPremium":true,"subscriptionStatus":"active"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	home := t.TempDir()
	binaryPath := buildBinary(t)
	env := []string{
		"HOME=" + home,
		"SLIM_API_BASE_URL=" + backend.URL,
		"SLIM_DEMO_MODE=true",
	}

	stdout, stderr, err := runSlim(t, binaryPath, env, "login", "--email", "slim@example.com", "--password", "123")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Logged in as Slim")

	stdout, stderr, err = runSlim(t, binaryPath, env, "gate", "--feature", "Figma Kit")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "unlocked")

	_, stderr, err = runSlim(t, binaryPath, env, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = runSlim(t, binaryPath, env, "gate", "--feature", "Figma Kit")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "slim-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/slim")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build slim binary: %s", string(output))
	return binaryPath
}

func runSlim(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
