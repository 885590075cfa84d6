package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"DinoChatbot_CourseProject/internal/storage"

	"github.com/joho/godotenv"
)

// 시드 바이너리: 스키마 생성 후 기준 데이터를 1회 입력한다.
// 이미 시드된 DB에 다시 실행하면 에러로 종료함 (중복 입력 방지)
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file found, using environment variables")
	}

	defaultPath := os.Getenv("DINO_DB_PATH")
	if defaultPath == "" {
		defaultPath = "./dino_name.db"
	}
	dbPath := flag.String("db", defaultPath, "path to the sqlite database file")
	flag.Parse()

	if err := storage.InitDB(*dbPath); err != nil {
		log.Fatal("main(): ", err)
	}
	defer storage.CloseDB()

	if err := storage.EnsureSchema(); err != nil {
		log.Fatal("main(): ", err)
	}
	log.Println("main(): schema ready")

	if err := storage.SeedData(); err != nil {
		if errors.Is(err, storage.ErrDinoExists) {
			log.Fatal("main(): dinosaurs table already seeded")
		}
		log.Fatal("main(): failed to seed dinosaurs: ", err)
	}
	log.Println("main(): seeded dinosaurs table")

	if err := storage.SeedTransports(); err != nil {
		if errors.Is(err, storage.ErrTransportExists) {
			log.Fatal("main(): transports table already seeded")
		}
		log.Fatal("main(): failed to seed transports: ", err)
	}
	log.Println("main(): seeded transports table")
}
