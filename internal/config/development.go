package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile is where a game writes its log, empty when unset.
func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}
