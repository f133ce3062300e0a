package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
)

type fakeDashboardSrv struct {
	stats *models.DashboardStats
	hit   bool
	err   error
}

func (f *fakeDashboardSrv) Stats(context.Context) (*models.DashboardStats, bool, error) {
	return f.stats, f.hit, f.err
}

func TestDashboardHandlerStatsSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{
		stats: &models.DashboardStats{Cursos: 4, Turmas: 12, Alunos: 230, GeneratedAt: time.Now().UTC()},
		hit:   true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, float64(230), envelope.Data["alunos"])
}

func TestDashboardHandlerStatsError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{err: appErrors.ErrInternal})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type responseEnvelope struct {
	Data map[string]interface{} `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}
