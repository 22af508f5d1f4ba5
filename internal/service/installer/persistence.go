package installer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandevgo/defendiq/internal/service/alerts"
	"github.com/sandevgo/defendiq/pkg/env"
)

var ErrEnvExists = errors.New(".env file already exists")

// Save writes the runtime directory: the .env file and, when the alerts
// file is selected and missing, a sample alerts.yaml. An existing .env is
// only replaced when force is set.
func Save(state *InstallState, force bool) error {
	path := state.App.GetRuntimePath()
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := state.App.GetEnvPath()
	if _, err := os.Stat(envPath); err == nil && !force {
		return fmt.Errorf("%w at %s", ErrEnvExists, envPath)
	}

	if file := state.Alerts.FilePath; file != "" {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			if err := alerts.WriteFile(file, alerts.Recent()); err != nil {
				return err
			}
		}
	}

	sections := []any{&state.App, &state.Alerts}
	if state.App.EnableTelegram {
		sections = append(sections, &state.Telegram)
	}

	var content strings.Builder
	for _, s := range sections {
		lines, err := env.MarshalEnv(s)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		content.WriteString(lines)
	}

	if err := os.WriteFile(envPath, []byte(content.String()), 0600); err != nil {
		return fmt.Errorf("failed to write .env file: %w", err)
	}
	return nil
}
