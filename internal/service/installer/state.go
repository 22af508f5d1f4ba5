package installer

import "github.com/sandevgo/defendiq/internal/config"

// InstallState is the configuration the wizard edits before it is saved.
type InstallState struct {
	App      config.AppConfig
	Alerts   config.AlertsConfig
	Telegram config.TelegramConfig
}

// NewInstallState starts from parsed configs so fields the wizard never
// asks about keep their defaults.
func NewInstallState(app config.AppConfig, alerts config.AlertsConfig) *InstallState {
	return &InstallState{App: app, Alerts: alerts}
}
