package config

import (
	"log"
	"os"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "solemart.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./solemart.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
