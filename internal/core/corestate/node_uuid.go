package corestate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vantrou/memnode/internal/core/utils"
)

// GetNodeUUID reads the persistent node identity from the meta directory.
func GetNodeUUID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SetNodeUUID generates a fresh identity and persists it. Called once on
// first start; subsequent starts reuse the stored value.
func SetNodeUUID(path string) error {
	uuid32, err := utils.NewUUID32()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(uuid32+"\n"), 0644)
}
