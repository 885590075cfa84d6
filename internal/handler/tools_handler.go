/**
* Name: 			tools_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		챗봇 도구 엔드포인트 (온도 변환, 안전 판정)
 */
package handler

import (
	"net/http"

	"DinoChatbot_CourseProject/internal/convert"
	"DinoChatbot_CourseProject/internal/safety"

	"github.com/gin-gonic/gin"
)

// 온도 변환 응답, celsius는 요청 값 그대로 반환
type ConvertResponse struct {
	Celsius    string  `json:"celsius" example:"30"`
	Fahrenheit float64 `json:"fahrenheit" example:"86"`
}

// /tools/safety-check 요청 바디, 값은 문자열로 받음 (단위 기호 허용)
type SafetyCheckRequest struct {
	Current string `json:"current" example:"75F"`
	Low     string `json:"low" example:"70"`
	High    string `json:"high" example:"95"`
}

type SafetyCheckResponse struct {
	Verdict string `json:"verdict" example:"It is safe for the dinosaurs at this temperature."`
}

// ConvertTemperature godoc
// @Summary      섭씨 -> 화씨 변환
// @Description  섭씨 온도를 화씨로 변환합니다. 숫자 외 문자는 무시됩니다. (예: "30.5°C")
// @Tags         Tools
// @Produce      json
// @Param        celsius query string true "섭씨 온도"
// @Success      200 {object} handler.ConvertResponse
// @Failure      400 {object} handler.ErrorResponse "온도 값 오류"
// @Router       /api/tools/convert [get]
func ConvertTemperature(c *gin.Context) {
	raw := c.Query("celsius")

	fahrenheit, err := convert.CelsiusToFahrenheit(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid celsius value"})
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{Celsius: raw, Fahrenheit: fahrenheit})
}

// CheckSafety godoc
// @Summary      온도 안전 판정 (범위 직접 지정)
// @Description  현재 온도와 안전 범위(low/high)를 받아 운송 가능 여부 문구를 반환합니다.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request body handler.SafetyCheckRequest true "판정 요청"
// @Success      200 {object} handler.SafetyCheckResponse
// @Failure      400 {object} handler.ErrorResponse "요청 바디 오류"
// @Router       /api/tools/safety-check [post]
func CheckSafety(c *gin.Context) {
	var req SafetyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	current, err := safety.ParseTemperature(req.Current)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid current temperature"})
		return
	}
	low, err := safety.ParseTemperature(req.Low)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid low temperature"})
		return
	}
	high, err := safety.ParseTemperature(req.High)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid high temperature"})
		return
	}

	c.JSON(http.StatusOK, SafetyCheckResponse{Verdict: safety.CheckTemperature(current, low, high)})
}
