/**
* Name: 			transport_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		날짜별 공룡 운송 기록 조회
 */
package handler

import (
	"log"
	"net/http"

	"DinoChatbot_CourseProject/internal/models"
	"DinoChatbot_CourseProject/internal/storage"

	"github.com/gin-gonic/gin"
)

// 운송 기록 목록 응답 (Wrapper)
type TransportListResponse struct {
	Transports []models.Transport `json:"transports"`
}

// GetTransportsByDate godoc
// @Summary      날짜별 운송 기록 조회
// @Description  지정한 날짜(YYYY-MM-DD)에 운송된 공룡 ID와 도시 목록을 반환합니다.
// @Tags         Transports
// @Produce      json
// @Param        date path string true "운송 날짜 (예: 2024-03-01)"
// @Success      200 {object} handler.TransportListResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/transports/{date} [get]
func GetTransportsByDate(c *gin.Context) {
	date := c.Param("date")

	transports, err := storage.GetTransportsByDate(date)
	if err != nil {
		log.Printf("[ERROR] GetTransportsByDate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transports"})
		return
	}
	c.JSON(http.StatusOK, TransportListResponse{Transports: transports})
}
