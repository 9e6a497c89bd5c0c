package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yockii/markslide/pkg/config"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "markslide-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	configFile := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("server:\n  port: 8080\n"), 0644); err != nil {
		panic(err)
	}
	if err := config.Init(configFile); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
