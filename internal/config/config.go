package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the GPS target service.
// It includes the environment, server port, worker pool sizing, the fix
// queue polling interval, the measurement error budget, and the database
// configuration.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - Port: The port for the monitoring and API server.
// - Workers: The number of concurrent workers processing fix requests.
// - Interval: The duration between fix queue polls.
// - GPSErrorM: Horizontal error of the observer GPS fix, meters.
// - AzimuthErrorDeg: Bearing measurement error, degrees.
// - RangeErrorM: Distance measurement error, meters.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env             string         `yaml:"env"`                // Env is the current environment: local, dev, prod.
	Port            int            `yaml:"gps.port"`           // Port is the monitoring and API server port.
	Workers         int            `yaml:"gps.workers"`        // The number of concurrent workers for processing requests.
	Interval        time.Duration  `yaml:"gps.interval"`       // The duration between fix queue polls.
	GPSErrorM       float64        `yaml:"errors.gps_m"`       // Horizontal error of the observer fix, meters.
	AzimuthErrorDeg float64        `yaml:"errors.azimuth_deg"` // Bearing measurement error, degrees.
	RangeErrorM     float64        `yaml:"errors.range_m"`     // Distance measurement error, meters.
	Database        PostgresConfig `yaml:"postgres"`           // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("GPS_INTERVAL", "1m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(setDefaultEnv("GPS_HEALTH_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("GPS_WORKERS", "10"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	gpsErrorM := mustParseFloat("GPS_RECEIVER_ERROR_M", "10")
	azimuthErrorDeg := mustParseFloat("GPS_AZIMUTH_ERROR_DEG", "0.5")
	rangeErrorM := mustParseFloat("GPS_RANGE_ERROR_M", "0.5")

	return &Config{
		Env:             setDefaultEnv("GPS_ENV", "production"),
		Port:            healthPort,
		Workers:         workers,
		Interval:        interval,
		GPSErrorM:       gpsErrorM,
		AzimuthErrorDeg: azimuthErrorDeg,
		RangeErrorM:     rangeErrorM,
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func mustParseFloat(key, override string) float64 {
	value, err := strconv.ParseFloat(setDefaultEnv(key, override), 64)
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a number")
	}
	return value
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
