package config

import (
	"os"
	"sync"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	ServerAddress string
	DatabaseURL   string

	// CycleAnchor - âncora canônica do ciclo 2x2x3x2x2x3. As telas
	// antigas usavam âncoras divergentes entre si; agora existe uma só,
	// vinda do ambiente, e toda conta de escala parte dela.
	CycleAnchor time.Time
}

var instance *AppConfig
var once sync.Once

func GetAppConfig() *AppConfig {
	once.Do(func() {
		instance = &AppConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Info("No .env file found, using environment variables")
		}

		instance.ServerAddress = getEnv("SERVER_ADDRESS", ":8080")
		instance.DatabaseURL = getEnv("DATABASE_URL", "data/folgas.db")

		anchorRaw := getEnv("CYCLE_ANCHOR", "2025-01-01")
		anchor, err := schedule.ParseISO(anchorRaw)
		if err != nil {
			logrus.Fatalf("invalid CYCLE_ANCHOR %q: %s", anchorRaw, err.Error())
		}
		instance.CycleAnchor = anchor
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
