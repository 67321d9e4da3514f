// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package db turns database run parameters into live SQL connections.
//
// The parameter surface is the conventional databaseSystem, databaseUser
// and databasePassword trio plus the optional databaseHost, databasePort,
// databaseDatabase, databaseSchema and databaseSID. The system value
// selects among ORACLE, MYSQL and POSTGRES, case insensitively.
package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/z5labs/loam"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	go_ora "github.com/sijms/go-ora/v2"
)

// System identifies a supported database engine.
type System string

const (
	Oracle   System = "ORACLE"
	MySQL    System = "MYSQL"
	Postgres System = "POSTGRES"
)

// UnsupportedSystemError occurs when a databaseSystem value is outside
// the known set.
type UnsupportedSystemError struct {
	System string
}

// Error implements the error interface.
func (e UnsupportedSystemError) Error() string {
	return fmt.Sprintf("unsupported database system %s", e.System)
}

// ParseSystem maps a raw databaseSystem value onto a System, ignoring
// case.
func ParseSystem(s string) (System, error) {
	switch sys := System(strings.ToUpper(s)); sys {
	case Oracle, MySQL, Postgres:
		return sys, nil
	default:
		return "", UnsupportedSystemError{System: strings.ToUpper(s)}
	}
}

// Config carries the raw connection parameters for one database. Optional
// fields are empty when unset and each engine falls back to its usual
// defaults for them.
type Config struct {
	System System

	User     string
	Password string

	Host     string
	Port     string
	Database string
	Schema   string
	SID      string
}

// FromStore reads the database parameters out of a parameter store. The
// system, user and password are required and reported together when
// missing; the rest are optional and noted at debug level when absent.
func FromStore(s *loam.Store) (Config, error) {
	err := s.Require(
		"databaseSystem - either Oracle, Postgres or MySQL",
		"databaseUser - the user name for the database",
		"databasePassword - the password for the database",
	)
	if err != nil {
		return Config{}, err
	}

	rawSystem, err := s.Get("databaseSystem")
	if err != nil {
		return Config{}, err
	}
	system, err := ParseSystem(rawSystem)
	if err != nil {
		return Config{}, err
	}
	user, err := s.Get("databaseUser")
	if err != nil {
		return Config{}, err
	}
	password, err := s.Get("databasePassword")
	if err != nil {
		return Config{}, err
	}

	return Config{
		System:   system,
		User:     user,
		Password: password,
		Host:     optional(s, "databaseHost"),
		Port:     optional(s, "databasePort"),
		Database: optional(s, "databaseDatabase"),
		Schema:   optional(s, "databaseSchema"),
		SID:      optional(s, "databaseSID"),
	}, nil
}

func optional(s *loam.Store, key string) string {
	v, err := s.Get(key)
	if err != nil {
		slog.Debug("optional database parameter is not set", slog.String("parameter", key))
		return ""
	}
	return v
}

func (c Config) port(def int) (int, error) {
	if c.Port == "" {
		return def, nil
	}
	n, err := strconv.Atoi(c.Port)
	if err != nil {
		return 0, loam.MalformedValueError{Key: "databasePort", Value: c.Port, Cause: err}
	}
	return n, nil
}

func (c Config) host() string {
	if c.Host == "" {
		return "localhost"
	}
	return c.Host
}

// DSN renders the configuration into a driver name and its data source
// string. It is pure, so connection strings can be built and inspected
// without touching any database.
func (c Config) DSN() (driver, dsn string, err error) {
	switch c.System {
	case Postgres:
		port, err := c.port(5432)
		if err != nil {
			return "", "", err
		}
		kv := []string{
			"host=" + c.host(),
			"port=" + strconv.Itoa(port),
			"user=" + c.User,
			"password=" + c.Password,
		}
		if c.Database != "" {
			kv = append(kv, "dbname="+c.Database)
		}
		if c.Schema != "" {
			kv = append(kv, "search_path="+c.Schema)
		}
		return "pgx", strings.Join(kv, " "), nil

	case MySQL:
		port, err := c.port(3306)
		if err != nil {
			return "", "", err
		}
		cfg := mysql.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", c.host(), port)
		cfg.DBName = c.Database
		return "mysql", cfg.FormatDSN(), nil

	case Oracle:
		port, err := c.port(1521)
		if err != nil {
			return "", "", err
		}
		var opts map[string]string
		if c.SID != "" {
			opts = map[string]string{"SID": c.SID}
		}
		return "oracle", go_ora.BuildUrl(c.host(), port, c.Database, c.User, c.Password, opts), nil

	default:
		return "", "", UnsupportedSystemError{System: string(c.System)}
	}
}

// Open opens a database handle for the configuration. Nothing is dialed
// until the handle is first used, per database/sql convention.
func Open(c Config) (*sql.DB, error) {
	driver, dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	if c.System == Postgres {
		pgcfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, err
		}
		return stdlib.OpenDB(*pgcfg), nil
	}
	return sql.Open(driver, dsn)
}

// OpenFromStore reads the database parameters from the store and opens a
// handle for them in one call.
func OpenFromStore(s *loam.Store) (*sql.DB, error) {
	cfg, err := FromStore(s)
	if err != nil {
		return nil, err
	}
	return Open(cfg)
}
