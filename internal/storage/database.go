package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// DB 연결 열기 및 확인, 스키마 생성은 EnsureSchema에서 수행
func InitDB(dbPath string) error {
	var err error

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("InitDB(): failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return fmt.Errorf("InitDB(): failed to connect to database: %w", err)
	}
	return nil
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// 참조 테이블 생성 (이미 존재하면 no-op)
func EnsureSchema() error {
	createDinosaursTable := `
	CREATE TABLE IF NOT EXISTS dinosaurs (
			"ID" TEXT PRIMARY KEY,
			"Name" TEXT
	);`
	createTransportsTable := `
	CREATE TABLE IF NOT EXISTS transports (
			"Date" TEXT NOT NULL,
			"DinoID_Transported" TEXT NOT NULL,
			"City" TEXT,
			PRIMARY KEY("Date", "DinoID_Transported")
	);`

	if _, err := db.Exec(createDinosaursTable); err != nil {
		return fmt.Errorf("EnsureSchema(): failed to create dinosaurs table: %w", err)
	}
	if _, err := db.Exec(createTransportsTable); err != nil {
		return fmt.Errorf("EnsureSchema(): failed to create transports table: %w", err)
	}
	return nil
}
