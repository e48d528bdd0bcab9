package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestInit_Idempotent(t *testing.T) {
	Init()
	assert.NotPanics(t, Init, "second Init must not re-register collectors")
}

func TestInstrument_CountsRequests(t *testing.T) {
	Init()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Instrument())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Serves(t *testing.T) {
	Init()
	LedgerAppends.WithLabelValues("LOGIN_SUCCESS", "ok").Inc()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "audit_ledger_appends_total")
}
