package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agency-contact-backend/internal/delivery/http/middleware"
	"agency-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSMiddleware(t *testing.T) {
	newEngine := func(production bool) *gin.Engine {
		r := gin.New()
		r.Use(middleware.CORSMiddleware([]string{"https://nordlicht-digital.de"}, production))
		r.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	preflight := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Should allow configured origin", func(t *testing.T) {
		w := preflight(newEngine(true), "https://nordlicht-digital.de")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://nordlicht-digital.de", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should reject unknown origin", func(t *testing.T) {
		w := preflight(newEngine(true), "https://evil.example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should allow localhost only outside production", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, preflight(newEngine(false), "http://localhost:3000").Code)
		assert.Equal(t, http.StatusForbidden, preflight(newEngine(true), "http://localhost:3000").Code)
	})
}

func TestErrorHandler(t *testing.T) {
	newEngine := func(err error) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
		r.GET("/", func(c *gin.Context) { c.Error(err) })
		return r
	}

	serve := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w
	}

	t.Run("Should use AppError code and message", func(t *testing.T) {
		w := serve(newEngine(apperror.Validation("Bitte füllen Sie alle Pflichtfelder aus.")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Bitte füllen Sie alle Pflichtfelder aus."}`, w.Body.String())
	})

	t.Run("Should hide wrapped cause", func(t *testing.T) {
		w := serve(newEngine(apperror.Internal("Fehler", errors.New("password=hunter2"))))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "hunter2")
	})

	t.Run("Should hide plain errors", func(t *testing.T) {
		w := serve(newEngine(errors.New("stack trace here")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "stack trace")
		assert.Contains(t, w.Body.String(), middleware.MsgUnexpected)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}
