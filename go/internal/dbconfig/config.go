package dbconfig

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/mcdev12/userform/go/internal/sqlutil"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

// Config holds relational store connection settings.
type Config struct {
	Driver          string `yaml:"driver"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	SSLMode         string `yaml:"sslmode"`
	ConnectionLimit int    `yaml:"connection_limit"`
}

// DefaultConfig returns the settings used when nothing is configured.
// Port is left zero so it can follow the driver.
func DefaultConfig() Config {
	return Config{
		Driver:          "mysql",
		Host:            "localhost",
		User:            "root",
		Password:        "",
		Database:        "user_form_db",
		SSLMode:         "disable",
		ConnectionLimit: 10,
	}
}

// ApplyEnv overrides fields with any DB_* variables that are set.
func (c *Config) ApplyEnv() {
	c.Driver = getEnv("DB_DRIVER", c.Driver)
	c.Host = getEnv("DB_HOST", c.Host)
	c.Port = getEnvAsInt("DB_PORT", c.Port)
	c.User = getEnv("DB_USER", c.User)
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Password = v
	}
	c.Database = getEnv("DB_NAME", c.Database)
	c.SSLMode = getEnv("DB_SSLMODE", c.SSLMode)
	c.ConnectionLimit = getEnvAsInt("DB_CONNECTION_LIMIT", c.ConnectionLimit)

	if c.Port == 0 {
		c.Port = c.defaultPort()
	}
}

// Validate reports settings that cannot produce a working pool.
func (c Config) Validate() error {
	if _, ok := sqlutil.ParseDialect(c.Driver); !ok {
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	if c.ConnectionLimit <= 0 {
		return fmt.Errorf("connection limit must be positive, got %d", c.ConnectionLimit)
	}
	return nil
}

// Dialect returns the SQL dialect for the configured driver.
func (c Config) Dialect() sqlutil.Dialect {
	d, _ := sqlutil.ParseDialect(c.Driver)
	return d
}

// DriverName returns the database/sql driver name to open.
func (c Config) DriverName() string {
	return c.Dialect().String()
}

// DSN returns the driver-specific connection string.
func (c Config) DSN() string {
	port := c.Port
	if port == 0 {
		port = c.defaultPort()
	}

	if c.Dialect() == sqlutil.Postgres {
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			c.User, c.Password, c.Host, port, c.Database, c.SSLMode,
		)
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(port))
	mc.DBName = c.Database
	mc.ParseTime = true
	mc.Timeout = 5 * time.Second
	return mc.FormatDSN()
}

func (c Config) defaultPort() int {
	if c.Dialect() == sqlutil.Postgres {
		return defaultPostgresPort
	}
	return defaultMySQLPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
