package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CAFE_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CAFE_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("CAFE_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("CAFE_PORT"))
	if err != nil || port <= 0 {
		return 5000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CAFE_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CAFE_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetUploadFolder() string {
	uploadFolder := os.Getenv("CAFE_UPLOAD_FOLDER")
	if uploadFolder == "" {
		uploadFolder = "static/uploads"
	}
	return uploadFolder
}

func GetMaxUploadBytes() int64 {
	mb, err := strconv.Atoi(os.Getenv("CAFE_MAX_UPLOAD_MB"))
	if err != nil || mb <= 0 {
		mb = 16
	}
	return int64(mb) * 1024 * 1024
}
