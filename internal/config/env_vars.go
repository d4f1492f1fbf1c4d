package config

import "os"

const (
	appNameVar   = "APP_NAME"
	apiBaseVar   = "API_BASE"
	mediaBaseVar = "MEDIA_BASE"
	frontendVar  = "FRONTEND_URL"
	folderEnvVar = "DATA_FOLDER"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Robel Studio")
}

// GetAPIBaseURL returns the backend API origin, defaulting to the local
// development server.
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseVar, "http://localhost:8000")
}

// GetMediaBaseURL is the host photo paths are resolved against.
func (EnvVars) GetMediaBaseURL() string {
	return GetEnv(mediaBaseVar, "http://localhost:8000")
}

// GetFrontendBaseURL is the public site used in share links and QR codes.
func (EnvVars) GetFrontendBaseURL() string {
	return GetEnv(frontendVar, "http://localhost:3000")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
