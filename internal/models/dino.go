package models

// 공룡 참조 데이터 모델 (sqlite dinosaurs 테이블의 한 행)
type Dino struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
