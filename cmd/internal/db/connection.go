package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

type DBConfig struct {
	Host string
	Port string

	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open abre la conexión a PostgreSQL y comprueba que responde.
func Open(config DBConfig) (*sql.DB, error) {
	conn, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error pinging the database: %w", err)
	}
	log.Printf("Database connection established successfully: %s", config.Name)
	return conn, nil
}
