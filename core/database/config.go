package database

import (
	"fmt"
	"net/url"
)

// Config selects and configures the lock store database.
type Config struct {
	// Driver is sqlite or mysql.
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host, Port, User and Password are used by mysql only.
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	// Name is the mysql schema, or the sqlite file path (":memory:" for tests).
	Name string `mapstructure:"name" default:"relics.db"`
	// TimeoutSeconds bounds the connection ping and mysql I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// MySQLDSN renders the mysql connection string. The password is URL encoded
// so special characters survive.
func (c Config) MySQLDSN(timeout int) string {
	userInfo := url.UserPassword(c.User, c.Password).String()
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, c.Host, c.Port, c.Name, timeout, timeout, timeout)
}
