package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "hashtree.log")
	cfg := Config{Level: "debug", Encoding: "json", OutputPaths: []string{path}}

	logger, err := New(cfg)
	r.NoError(err)

	logger.Infow("tree rebuilt", "leaves", 3)
	r.NoError(logger.Sync())

	content, err := os.ReadFile(path)
	r.NoError(err)
	r.Contains(string(content), `"msg":"tree rebuilt"`)
	r.Contains(string(content), `"leaves":3`)
}

func TestNewInvalidLevel(t *testing.T) {
	r := require.New(t)

	cfg := DefaultConfig()
	cfg.Level = "loud"

	_, err := New(cfg)
	r.Error(err)
}

func TestDefault(t *testing.T) {
	r := require.New(t)
	r.Same(Default(), Default())
}
