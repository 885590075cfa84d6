/**
* Name: 			dino_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		공룡 참조 데이터 조회 (목록, ID 조회, 안전 온도 판정)
 */
package handler

import (
	"database/sql"
	"log"
	"net/http"

	"DinoChatbot_CourseProject/internal/models"
	"DinoChatbot_CourseProject/internal/safety"
	"DinoChatbot_CourseProject/internal/storage"

	"github.com/gin-gonic/gin"
)

// 공룡 목록 응답 (Wrapper)
type DinoListResponse struct {
	Dinosaurs []models.Dino `json:"dinosaurs"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

// 안전 온도 판정 응답
type SafetyResponse struct {
	DinoID      string  `json:"dino_id" example:"T88"`
	Temperature float64 `json:"temperature" example:"75"`
	Low         float64 `json:"low" example:"70"`
	High        float64 `json:"high" example:"95"`
	Verdict     string  `json:"verdict" example:"It is safe for the dinosaurs at this temperature."`
}

// GetDinos godoc
// @Summary      공룡 목록 조회
// @Description  dinosaurs 테이블의 전체 행을 ID 순으로 반환합니다.
// @Tags         Dinosaurs
// @Produce      json
// @Success      200 {object} handler.DinoListResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/dinosaurs [get]
func GetDinos(c *gin.Context) {
	dinos, err := storage.ListDinos()
	if err != nil {
		log.Printf("[ERROR] GetDinos: ListDinos failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dinosaurs"})
		return
	}
	c.JSON(http.StatusOK, DinoListResponse{Dinosaurs: dinos})
}

// GetDinoByID godoc
// @Summary      공룡 단건 조회
// @Description  공룡 ID로 이름을 조회합니다. (예: T88 -> T-Rex)
// @Tags         Dinosaurs
// @Produce      json
// @Param        id path string true "공룡 ID (예: T88)"
// @Success      200 {object} models.Dino
// @Failure      404 {object} handler.ErrorResponse "해당 ID 없음"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/dinosaurs/{id} [get]
func GetDinoByID(c *gin.Context) {
	dinoID := c.Param("id")

	dino, err := storage.GetDinoByID(dinoID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dinosaur not found"})
			return
		}
		log.Printf("[ERROR] GetDinoByID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, dino)
}

// GetDinoSafety godoc
// @Summary      공룡 운송 온도 안전 판정
// @Description  현재 온도(화씨)가 해당 공룡의 안전 범위 내인지 판정합니다.
// @Tags         Dinosaurs
// @Produce      json
// @Param        id          path  string true "공룡 ID (예: T88)"
// @Param        temperature query string true "현재 온도 (화씨, 예: 75)"
// @Success      200 {object} handler.SafetyResponse
// @Failure      400 {object} handler.ErrorResponse "온도 값 오류"
// @Failure      404 {object} handler.ErrorResponse "안전 범위 정보 없음"
// @Router       /api/dinosaurs/{id}/safety [get]
func GetDinoSafety(c *gin.Context) {
	dinoID := c.Param("id")

	tempRange, exists := safety.GetRange(dinoID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No safety range for this dinosaur"})
		return
	}

	current, err := safety.ParseTemperature(c.Query("temperature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid temperature value"})
		return
	}

	c.JSON(http.StatusOK, SafetyResponse{
		DinoID:      dinoID,
		Temperature: current,
		Low:         tempRange.Low,
		High:        tempRange.High,
		Verdict:     safety.CheckTemperature(current, tempRange.Low, tempRange.High),
	})
}
