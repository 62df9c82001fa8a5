package config

import (
	"log"
	"os"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	Seed    bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "botilleria.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./botilleria.log"
	}
	seed := os.Getenv("SEED") == "1" || os.Getenv("SEED") == "true"

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, Seed: seed}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SEED=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.Seed)
	return cfg
}
