package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Loaded once in main and passed into each
// component; nothing reads the environment after startup.
type Config struct {
	Port           string
	AllowedOrigins string

	MongoURI string
	DBName   string

	RedisURI string

	JWTSecret string

	// SMTP settings for the notification worker. All empty means email is off.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
	OpsEmail string // recipient of defect / overdue-checkpoint alerts

	// Geofence tunables.
	AttendanceRadiusMeters        float64 // clock-in/out gate
	DefaultCheckpointRadiusMeters float64
	DefaultCheckFrequencyMinutes  int

	QRCodeDir string // where checkpoint QR PNGs are written
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	return Config{
		Port:           getEnv("APP_PORT", "8888"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "GuardPointDB"),

		RedisURI: os.Getenv("REDIS_URI"),

		JWTSecret: getEnv("JWT_SECRET", "your_secret_key"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
		OpsEmail: os.Getenv("OPS_EMAIL"),

		AttendanceRadiusMeters:        getEnvFloat("ATTENDANCE_RADIUS_M", 500),
		DefaultCheckpointRadiusMeters: getEnvFloat("CHECKPOINT_RADIUS_M", 50),
		DefaultCheckFrequencyMinutes:  getEnvInt("CHECKPOINT_FREQUENCY_MIN", 60),

		QRCodeDir: getEnv("QRCODE_DIR", "public/qrcodes"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
