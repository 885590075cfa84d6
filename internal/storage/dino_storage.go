package storage

import (
	"database/sql"
	"errors"

	"DinoChatbot_CourseProject/internal/models"

	"modernc.org/sqlite"
)

var ErrDinoExists = errors.New("dinosaur id already exists")

// 원본 시드 스크립트의 두 행, 그대로 유지
var seedDinos = []models.Dino{
	{ID: "T88", Name: "T-Rex"},
	{ID: "V66", Name: "Velociraptor"},
}

// 시드 데이터 입력. 충돌 처리 절 없음: 이미 시드된 DB에 다시 실행하면
// ErrDinoExists를 반환하고 기존 행은 변경되지 않음
func SeedData() error {
	stmt, err := db.Prepare(`INSERT INTO dinosaurs("ID", "Name") VALUES(?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, dino := range seedDinos {
		if _, err := stmt.Exec(dino.ID, dino.Name); err != nil {
			var sqliteErr *sqlite.Error
			if errors.As(err, &sqliteErr) {
				// 1555: PRIMARY KEY 제약, 2067: UNIQUE 제약
				if sqliteErr.Code() == 1555 || sqliteErr.Code() == 2067 {
					return ErrDinoExists
				}
			}
			return err
		}
	}
	return nil
}

func GetDinoByID(dinoID string) (models.Dino, error) {
	var dino models.Dino
	var nullName sql.NullString

	row := db.QueryRow(`SELECT "ID", "Name" FROM dinosaurs WHERE "ID" = ?`, dinoID)
	if err := row.Scan(&dino.ID, &nullName); err != nil {
		return dino, err // sql.ErrNoRows 포함
	}

	if nullName.Valid {
		dino.Name = nullName.String
	}
	return dino, nil
}

func ListDinos() ([]models.Dino, error) {
	rows, err := db.Query(`SELECT "ID", "Name" FROM dinosaurs ORDER BY "ID"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dinos []models.Dino
	for rows.Next() {
		var dino models.Dino
		var nullName sql.NullString

		if err := rows.Scan(&dino.ID, &nullName); err != nil {
			return nil, err
		}
		if nullName.Valid {
			dino.Name = nullName.String
		}
		dinos = append(dinos, dino)
	}
	return dinos, rows.Err()
}
