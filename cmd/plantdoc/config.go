package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	storageBackendJSON   = "json"
	storageBackendSQLite = "sqlite"
	minSecretKeyLength   = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type config struct {
	Port            string
	SecretKey       string
	CookieSecure    bool
	DefaultLanguage string
	StorageBackend  string
	DataDir         string
	DBPath          string
	KnowledgeFile   string
	AdminUsername   string
	AdminPassword   string
	TranslateURL    string
	TranslateAPIKey string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ClassifierURL   string
	UploadDir       string
	S3Bucket        string
}

func loadConfig() (config, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return config{}, err
	}
	cfg, err := loadStorageConfig()
	if err != nil {
		return config{}, err
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return config{}, fmt.Errorf("invalid REDIS_DB %q", os.Getenv("REDIS_DB"))
	}

	cfg.Port = port
	cfg.SecretKey = secretKey
	cfg.CookieSecure = parseBoolEnv(os.Getenv("COOKIE_SECURE"))
	cfg.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "en")
	cfg.KnowledgeFile = getEnv("KNOWLEDGE_FILE", filepath.Join(cfg.DataDir, "plant_diseases.json"))
	cfg.AdminUsername = strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	cfg.TranslateURL = strings.TrimSpace(os.Getenv("TRANSLATE_URL"))
	cfg.TranslateAPIKey = os.Getenv("TRANSLATE_API_KEY")
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = redisDB
	cfg.ClassifierURL = getEnv("CLASSIFIER_URL", "http://localhost:8501/v1/models/plant_disease:predict")
	cfg.UploadDir = getEnv("UPLOAD_DIR", filepath.Join(cfg.DataDir, "uploads"))
	cfg.S3Bucket = strings.TrimSpace(os.Getenv("S3_BUCKET"))
	return cfg, nil
}

// loadStorageConfig reads only the storage keys. reset-password uses it
// directly and never needs SECRET_KEY.
func loadStorageConfig() (config, error) {
	backend, err := resolveStorageBackend()
	if err != nil {
		return config{}, err
	}
	dataDir := getEnv("DATA_DIR", "data")
	return config{
		StorageBackend: backend,
		DataDir:        dataDir,
		DBPath:         getEnv("DB_PATH", filepath.Join(dataDir, "plantdoc.db")),
	}, nil
}

func resolveSecretKey() (string, error) {
	secretKey := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secretKey == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secretKey)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secretKey) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secretKey, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveStorageBackend() (string, error) {
	backend := strings.ToLower(getEnv("STORAGE_BACKEND", storageBackendJSON))
	switch backend {
	case storageBackendJSON, storageBackendSQLite:
		return backend, nil
	default:
		return "", fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}

func parseBoolEnv(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
