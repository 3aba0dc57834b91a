package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/results/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/results/:id", "404"))
	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/results/"+id, nil))
	}
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/results/:id", "404"))
	assert.Equal(t, before+2, after)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHelpers(t *testing.T) {
	before := testutil.ToFloat64(GenerateRequests.WithLabelValues("ok"))
	IncGenerateRequest("ok")
	assert.Equal(t, before+1, testutil.ToFloat64(GenerateRequests.WithLabelValues("ok")))

	IncGeneratedFile("html", "HTML")
	assert.GreaterOrEqual(t, testutil.ToFloat64(GeneratedFiles.WithLabelValues("html", "HTML")), float64(1))
}

func TestHandler_Exposition(t *testing.T) {
	IncGenerateRequest("invalid")

	r := gin.New()
	r.GET("/metrics", Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "sitegen_generate_requests_total"))
}
