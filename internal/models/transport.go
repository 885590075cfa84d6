package models

// 공룡 운송 기록 모델, (Date, DinoID) 복합 키
type Transport struct {
	Date   string `json:"date"`
	DinoID string `json:"dino_id"`
	City   string `json:"city"`
}
