package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"DinoChatbot_CourseProject/internal/handler"
	"DinoChatbot_CourseProject/internal/models"
	"DinoChatbot_CourseProject/internal/safety"
	"DinoChatbot_CourseProject/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 시드 완료된 임시 DB 위에 실제 라우트 구성으로 라우터 생성
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, storage.InitDB(filepath.Join(t.TempDir(), "test_api.db")))
	t.Cleanup(func() {
		storage.CloseDB()
	})
	require.NoError(t, storage.EnsureSchema())
	require.NoError(t, storage.SeedData())
	require.NoError(t, storage.SeedTransports())

	router := gin.New()
	router.GET("/health", handler.HealthCheck)
	api := router.Group("/api")
	{
		api.GET("/dinosaurs", handler.GetDinos)
		api.GET("/dinosaurs/:id", handler.GetDinoByID)
		api.GET("/dinosaurs/:id/safety", handler.GetDinoSafety)
		api.GET("/transports/:date", handler.GetTransportsByDate)
		api.GET("/tools/convert", handler.ConvertTemperature)
		api.POST("/tools/safety-check", handler.CheckSafety)
	}
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	w := doGet(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDinos(t *testing.T) {
	router := setupRouter(t)

	w := doGet(router, "/api/dinosaurs")
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.DinoListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []models.Dino{
		{ID: "T88", Name: "T-Rex"},
		{ID: "V66", Name: "Velociraptor"},
	}, resp.Dinosaurs)
}

func TestGetDinoByID(t *testing.T) {
	router := setupRouter(t)

	w := doGet(router, "/api/dinosaurs/T88")
	require.Equal(t, http.StatusOK, w.Code)

	var dino models.Dino
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dino))
	assert.Equal(t, "T-Rex", dino.Name)

	w = doGet(router, "/api/dinosaurs/X99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDinoSafety(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		temperature string
		wantVerdict string
	}{
		{"75", safety.VerdictSafe},
		{"50", safety.VerdictTooCold},
		{"100", safety.VerdictTooHot},
	}
	for _, tt := range tests {
		w := doGet(router, "/api/dinosaurs/T88/safety?temperature="+tt.temperature)
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.SafetyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tt.wantVerdict, resp.Verdict)
	}

	w := doGet(router, "/api/dinosaurs/X99/safety?temperature=75")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doGet(router, "/api/dinosaurs/T88/safety?temperature=hot")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTransportsByDate(t *testing.T) {
	router := setupRouter(t)

	w := doGet(router, "/api/transports/2024-03-01")
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.TransportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transports, 2)
	assert.Equal(t, "Chicago", resp.Transports[0].City)

	w = doGet(router, "/api/transports/1999-01-01")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Transports)
}

func TestConvertTemperature(t *testing.T) {
	router := setupRouter(t)

	w := doGet(router, "/api/tools/convert?celsius=30")
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 86, resp.Fahrenheit, 1e-9)

	w = doGet(router, "/api/tools/convert?celsius=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckSafety(t *testing.T) {
	router := setupRouter(t)

	body, err := json.Marshal(handler.SafetyCheckRequest{Current: "75F", Low: "70", High: "95"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/safety-check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.SafetyCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, safety.VerdictSafe, resp.Verdict)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/tools/safety-check", bytes.NewReader([]byte(`{"current":"hot"`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
