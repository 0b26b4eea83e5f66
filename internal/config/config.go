package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	// DBDriver selects the storage backend: "sqlite" (default, single
	// file) or "postgres".
	DBDriver    string
	DBPath      string
	DatabaseURL string

	// Owner login. Auth is disabled when JWTSecret is empty.
	JWTSecret         []byte
	OwnerPasswordHash string

	KafkaBrokers []string
	KafkaTopic   string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "say-iletisim"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		DBDriver:    EnvDefault("DB_DRIVER", "sqlite"),
		DBPath:      EnvDefault("DB_PATH", "sayiniletisim.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
		OwnerPasswordHash: os.Getenv("OWNER_PASSWORD_HASH"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   EnvDefault("KAFKA_TOPIC", "shop_events"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),
	}
}
