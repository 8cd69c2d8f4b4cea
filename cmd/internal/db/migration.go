package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"
)

// Schema es migration.sql incluido en el binario.
//
//go:embed migration.sql
var Schema string

// ApplyMigrations ejecuta el script de esquema en una sola transacción. Con
// path vacío usa Schema, así el binario no depende del directorio de trabajo.
// El script debe ser idempotente (IF NOT EXISTS): se corre en cada arranque.
func ApplyMigrations(ctx context.Context, conn *sql.DB, path string) error {
	content := Schema
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading migration file: %w", err)
		}
		content = string(raw)
	} else {
		path = "embedded schema"
	}
	script := strings.TrimSpace(content)
	if script == "" {
		log.Printf("migration file %s is empty, nothing to apply", path)
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting migration: %w", err)
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("error applying migration %s: %w", path, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing migration: %w", err)
	}
	return nil
}
