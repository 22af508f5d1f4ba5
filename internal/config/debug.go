package config

import "os"

func IsDebug() bool {
	return os.Getenv("DEFENDIQ_DEBUG") == "1"
}
