package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDotEnv_EnvSpecificFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTENV_TEST_BASE=1\n"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), []byte("DOTENV_TEST_STAGE=1\n"), 0o644))

	t.Setenv("APP_ENV", "staging")
	chdir(t, dir)

	loaded := LoadDotEnv()
	assert.Equal(t, []string{".env.staging", ".env"}, loaded)
	assert.Equal(t, "1", os.Getenv("DOTENV_TEST_BASE"))
	assert.Equal(t, "1", os.Getenv("DOTENV_TEST_STAGE"))
}

func TestLoadDotEnv_NothingToLoad(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Empty(t, LoadDotEnv())
}
