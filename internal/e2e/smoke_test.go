package e2e

import (
	"archive/zip"
	"bytes"
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
	home := t.TempDir()
	workDir := t.TempDir()
	binaryPath := buildBinary(t)

	archive := packArchive(t, "textures/oak.png")
	packServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer packServer.Close()

	_, stderr, err := runServerpacks(t, binaryPath, home, workDir, "install", "forest", packServer.URL+"/forest.jar")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(workDir, "packs", "forest.jar"))

	stdout, stderr, err := runServerpacks(t, binaryPath, home, workDir, "packs", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "forest")
	assert.Contains(t, stdout, "[active]")

	stdout, stderr, err = runServerpacks(t, binaryPath, home, workDir, "packs", "find", "textures/oak.png")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "provided by forest")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "serverpacks-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/serverpacks")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build serverpacks binary: %s", string(output))
	return binaryPath
}

func runServerpacks(t *testing.T, binaryPath, home, workDir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+home)

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

func packArchive(t *testing.T, entries ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range entries {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf.Bytes()
}
