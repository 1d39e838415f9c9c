package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string
	DevMode  bool

	UploadDir  string
	ReportFont string

	RobotServiceURL string
	NewsAPIURL      string
	NewsAPIKey      string
	OpenAIKey       string

	OutboundTimeout time.Duration
	OutboundRetries int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "restro.db"),
		Port:            getEnv("PORT", "8000"),
		DevMode:         os.Getenv("DEV_MODE") == "true",
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		ReportFont:      getEnv("REPORT_FONT", "./fonts/DejaVuSans.ttf"),
		RobotServiceURL: getEnv("ROBOT_SERVICE_URL", "http://localhost:9090"),
		NewsAPIURL:      getEnv("NEWS_API_URL", "https://newsapi.org/v2/top-headlines"),
		NewsAPIKey:      os.Getenv("NEWS_API_KEY"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OutboundTimeout: 10 * time.Second,
		OutboundRetries: 2,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
