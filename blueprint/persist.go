package blueprint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vanzic/Project-Rivo/types"
)

// Save writes the blueprint as indented JSON under dir for inspection and
// regression testing. Returns the written path.
func Save(bp *types.Blueprint, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create blueprint dir: %w", err)
	}

	data, err := json.MarshalIndent(bp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal blueprint: %w", err)
	}

	path := filepath.Join(dir, types.SafeKey(bp.TrendKey)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blueprint: %w", err)
	}
	return path, nil
}

// Load reads a persisted blueprint back from disk.
func Load(path string) (*types.Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}

	var bp types.Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint: %w", err)
	}
	return &bp, nil
}
