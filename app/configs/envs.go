package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	SQLitePath string
	Port       string
	JWTSecret  string
	LogMode    string
	LogFile    string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBDriver:   os.Getenv("DB_DRIVER"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		Port:       os.Getenv("APP_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogMode:    os.Getenv("LOG_MODE"),
		LogFile:    os.Getenv("LOG_FILE"),
	}

	if env.DBDriver == "" {
		env.DBDriver = "sqlite"
	}
	if env.SQLitePath == "" {
		env.SQLitePath = "mada_annuaire.db"
	}
	if env.Port == "" {
		env.Port = ":3000"
	}
	if env.JWTSecret == "" {
		env.JWTSecret = "mada-secret-key-2026"
	}

	return env
}

var LoadENV = LoadEnv()
