package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	timeprovider "github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordedRequest struct {
	method, route, status string
}

type fakeObserver struct {
	requests []recordedRequest
}

func (o *fakeObserver) ObserveHTTPRequest(method, route, status string, _ float64) {
	o.requests = append(o.requests, recordedRequest{method, route, status})
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Body.String())
		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("assigns an id when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, rec.Body.String(), 36)
		assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/panic", func(*gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	observer := &fakeObserver{}
	router := gin.New()
	router.Use(Metrics(observer, timeprovider.NewRealTimeProvider()))
	router.GET("/api/credits/:userId", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/credits/device-1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, observer.requests, 2)
	assert.Equal(t, recordedRequest{"GET", "/api/credits/:userId", "200"}, observer.requests[0])
	assert.Equal(t, recordedRequest{"GET", unmatchedRoute, "404"}, observer.requests[1])
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusOK && fields["route"] == "/ok"
	})).Once()
	log.EXPECT().Error("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusBadGateway
	})).Once()

	router := gin.New()
	router.Use(Logger(log, timeprovider.NewRealTimeProvider()))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
}

func TestBodyLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(8))
	router.POST("/echo", func(c *gin.Context) {
		data, err := c.GetRawData()
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(data))
	})

	small := httptest.NewRecorder()
	router.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("tiny")))
	assert.Equal(t, http.StatusOK, small.Code)

	large := httptest.NewRecorder()
	router.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("far too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}
