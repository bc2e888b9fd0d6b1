package main

import (
	"os"
	"strconv"

	"github.com/RemoteState/localnews-server/cronJobs"
	"github.com/RemoteState/localnews-server/database"
	"github.com/RemoteState/localnews-server/server"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

func InitiateCronJobs() error {
	logrus.Infof("initiating cronJobs jobs")
	retentionDays := envInt("HISTORY_RETENTION_DAYS", cronJobs.DefaultRetentionDays)

	purgeSearchHistory := cron.New()
	err := purgeSearchHistory.AddFunc("@daily", func() {
		cronJobs.PurgeSearchHistory(retentionDays)
	})
	if err != nil {
		logrus.Errorf("cronJobs job initiation failed %v", err)
		return err
	}
	purgeSearchHistory.Start()

	logrus.Infof("cronJobs job initiation successful")
	return nil
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Errorf("invalid %s value %q, using %d", name, raw, fallback)
		return fallback
	}
	return val
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	if err := database.ConnectAndMigrate(os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		database.SSLModeDisable); err != nil {
		logrus.Panicf("Failed to initialize and migrate database with error: %+v", err)
	}

	logrus.Print("migration successful!!")
	if err := InitiateCronJobs(); err != nil {
		logrus.Error("error from cronJobs job", err)
	}

	// create server instance
	srv := server.SetupRoutes(envInt("DEFAULT_USER_ID", 1))

	logrus.Print("Server started at ", os.Getenv("SERVER_HOST_PORT"))
	if err := srv.Run(":" + os.Getenv("SERVER_HOST_PORT")); err != nil {
		logrus.Panicf("Failed to run server with error: %+v", err)
	}
}
