package config

import (
	"fmt"
	"strings"
	"time"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`

	// Connection pool settings
	MaxOpenConns    int `validate:"gte=0"`
	MaxIdleConns    int `validate:"gte=0"`
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// Queries slower than this are logged at warn level
	SlowThreshold time.Duration
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteDSNValue quotes a keyword/value connection string value so that empty
// values and values containing spaces or quotes stay a single token.
func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// DSN returns the database connection string in keyword/value form
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(c.Host), c.Port, quoteDSNValue(c.User), quoteDSNValue(c.Password),
		quoteDSNValue(c.Name), quoteDSNValue(c.SSLMode))
}
