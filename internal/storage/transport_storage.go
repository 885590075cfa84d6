package storage

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"DinoChatbot_CourseProject/internal/models"

	"modernc.org/sqlite"
)

var ErrTransportExists = errors.New("transport record already exists")

// 운송 기록 CSV, 빌드 시점에 포함됨 (원본은 dino_records.csv를 DynamoDB에 업로드)
//
//go:embed seeddata/dino_records.csv
var transportCSV []byte

// CSV를 읽어 transports 테이블에 입력. 헤더: Date,DinoID_Transported,City
func SeedTransports() error {
	reader := csv.NewReader(bytes.NewReader(transportCSV))

	// 헤더 행 건너뛰기
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("SeedTransports(): failed to read csv header: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO transports("Date", "DinoID_Transported", "City") VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("SeedTransports(): failed to read csv row: %w", err)
		}
		if len(row) != 3 {
			return fmt.Errorf("SeedTransports(): unexpected csv row length %d", len(row))
		}

		if _, err := stmt.Exec(row[0], row[1], row[2]); err != nil {
			var sqliteErr *sqlite.Error
			if errors.As(err, &sqliteErr) {
				if sqliteErr.Code() == 1555 || sqliteErr.Code() == 2067 {
					return ErrTransportExists
				}
			}
			return err
		}
	}
	return nil
}

func GetTransportsByDate(date string) ([]models.Transport, error) {
	query := `
		SELECT "Date", "DinoID_Transported", "City"
		FROM transports
		WHERE "Date" = ?
		ORDER BY "DinoID_Transported"
	`
	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transports []models.Transport
	for rows.Next() {
		var t models.Transport
		if err := rows.Scan(&t.Date, &t.DinoID, &t.City); err != nil {
			return nil, err
		}
		transports = append(transports, t)
	}
	return transports, rows.Err()
}
