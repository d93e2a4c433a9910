package repository

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies goose migrations from dir. Connection is opened through lib/pq
// and closed before return
func Migrate(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(conn, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
