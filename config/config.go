package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	AdminAPIKey string
	RabbitMQURL string
	OrderEvents string
	UploadDir   string
	ReportDir   string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "jsmart"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
		OrderEvents: getEnv("ORDER_EVENTS_EXCHANGE", "order_events"),
		UploadDir:   getEnv("UPLOAD_DIR", "/var/www/jsmart/uploads"),
		ReportDir:   getEnv("REPORT_DIR", "/var/www/jsmart/reports"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
