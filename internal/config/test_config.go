package config

import (
	"os"
	"strconv"
)

// defaultTestDSN points integration tests at a local throwaway database
const defaultTestDSN = "root:password@tcp(localhost:3306)/mediatheque_test?parseTime=true&charset=utf8mb4"

// TestDSN returns the connection string for the integration test database.
// It honors the TEST_DB_* variables when all of them are set and falls back
// to the local throwaway database otherwise.
func TestDSN() string {
	host := os.Getenv("TEST_DB_HOST")
	portStr := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	name := os.Getenv("TEST_DB_NAME")
	if host == "" || portStr == "" || user == "" || password == "" || name == "" {
		return defaultTestDSN
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return defaultTestDSN
	}

	cfg := &Config{}
	cfg.Database = DatabaseConfig{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		DBName:   name,
	}
	return cfg.DSN()
}
