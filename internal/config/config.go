package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	MediaDir       string
	LogFile        string
	WhatsAppNumber string
	SessionTTLHrs  int
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "crestview.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./crestview.log"
	}
	wa := os.Getenv("WHATSAPP_NUMBER")
	if wa == "" {
		wa = "+919876543210" // sales desk click-to-chat
	}
	ttl := 12
	if s := os.Getenv("SESSION_TTL_HOURS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			ttl = n
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile, WhatsAppNumber: wa, SessionTTLHrs: ttl}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s SESSION_TTL_HOURS=%d", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.SessionTTLHrs)
	return cfg
}
