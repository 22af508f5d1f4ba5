package core

import "time"

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetInputHistoryPath() string
	GetAlertsPath() string
	IsTelegramSelected() bool
	IsCLISelected() bool
	IsJournalEnabled() bool
	GetLatency() (min, max time.Duration)
}

type AlertsConfig interface {
	GetFilePath() string
	GetFeedURL() string
	GetFeedTimeout() time.Duration
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
