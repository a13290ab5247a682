package config

import (
	"flag"
	"os"
)

// Config содержит конфигурацию приложения.
type Config struct {
	RunAddress  string
	DatabaseURI string
	RedisAddr   string
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
// Если не задан ни PostgreSQL, ни Redis, состояние живёт в памяти процесса.
func Load() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "адрес и порт запуска сервиса")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "строка подключения к PostgreSQL")
	flag.StringVar(&cfg.RedisAddr, "r", "", "адрес Redis")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDRESS"); envRunAddr != "" {
		cfg.RunAddress = envRunAddr
	}
	if envDBURI := os.Getenv("DATABASE_URI"); envDBURI != "" {
		cfg.DatabaseURI = envDBURI
	}
	if envRedis := os.Getenv("REDIS_ADDR"); envRedis != "" {
		cfg.RedisAddr = envRedis
	}

	return cfg
}
