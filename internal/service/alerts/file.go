package alerts

import (
	"context"
	"fmt"
	"os"

	"github.com/sandevgo/defendiq/internal/core"
	"gopkg.in/yaml.v3"
)

// File reads a YAML list of alerts on every call, so edits show up
// without a restart.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Alerts(ctx context.Context) ([]core.Alert, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alerts file: %w", err)
	}

	var alerts []core.Alert
	if err := yaml.Unmarshal(data, &alerts); err != nil {
		return nil, fmt.Errorf("failed to parse alerts file %s: %w", f.path, err)
	}
	return alerts, nil
}

// WriteFile stores alerts in the format File reads.
func WriteFile(path string, alerts []core.Alert) error {
	data, err := yaml.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal alerts: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write alerts file: %w", err)
	}
	return nil
}
