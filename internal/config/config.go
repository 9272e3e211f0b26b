package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DatabasePath  string
	ModelManifest string
	LogMode       string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SenderName   string

	WebAppURL        string
	FeedbackEndpoint string
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "prediction_data.db"),
		ModelManifest: getEnv("MODEL_MANIFEST", "models.yaml"),
		LogMode:       getEnv("LOG_MODE", "dev"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("EMAIL_ADDRESS", ""),
		SMTPPassword: getEnv("EMAIL_PASSWORD", ""),
		SenderName:   getEnv("SENDER_NAME", "Disease Prediction System"),

		WebAppURL:        getEnv("WEBAPP_URL", "https://dps-web-app.example.com/"),
		FeedbackEndpoint: getEnv("FEEDBACK_ENDPOINT", "https://formspree.io/f/xyzkwvel"),
	}
}

// MailEnabled reports whether outbound email is configured. When it is not,
// the prediction pipeline still runs but skips the notification stage.
func (c Config) MailEnabled() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
