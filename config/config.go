package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort        string
	Environment       string
	MinIOEndpoint     string
	MinIOAccessKey    string
	MinIOSecretKey    string
	MinIOUseSSL       bool
	SourceBucket      string // Бакет для исходных XLSX/XLS таблиц
	TargetBucket      string // Бакет для json расписаний групп
	SourcePathPattern string // Путь к исходной таблице, %s - имя файла
	GroupPathPattern  string // Путь к json группы, %s - имя группы
	CacheTTL          time.Duration
	PresignedURLTTL   time.Duration
	HeaderRow         int // Строка с названиями групп (с нуля)
	GroupNameWidth    int // Длина названия группы в символах
	ParseWorkers      int
	CORSOrigins       []string
}

func Load() *Config {
	cacheMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))
	presignedMinutes, _ := strconv.Atoi(getEnv("PRESIGNED_URL_TTL_MINUTES", "15"))
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		MinIOEndpoint:     getEnv("MINIO_ENDPOINT", "minio:9000"),
		MinIOAccessKey:    getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:    getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOUseSSL:       useSSL,
		SourceBucket:      getEnv("SOURCE_BUCKET", "timetable-upload"),
		TargetBucket:      getEnv("TARGET_BUCKET", "group-schedules"),
		SourcePathPattern: getEnv("SOURCE_PATH_PATTERN", "timetables/%s"),
		GroupPathPattern:  getEnv("GROUP_PATH_PATTERN", "groups/%s.json"),
		CacheTTL:          time.Duration(cacheMinutes) * time.Minute,
		PresignedURLTTL:   time.Duration(presignedMinutes) * time.Minute,
		HeaderRow:         getEnvInt("HEADER_ROW", 1),
		GroupNameWidth:    getEnvInt("GROUP_NAME_WIDTH", 10),
		ParseWorkers:      getEnvInt("PARSE_WORKERS", 4),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
