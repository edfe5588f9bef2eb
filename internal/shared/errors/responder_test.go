package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/boutiques", handler)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boutiques", nil))
	return rec
}

func TestRespondError_WrapsErrorsAsInternal(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		RespondError(c, fmt.Errorf("list stores: %w", fmt.Errorf("connection refused")))
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, TypeInternal, problem.Type)
	require.Equal(t, "/api/boutiques", problem.Instance)
	require.Equal(t, "list stores: connection refused", problem.Detail)
}

func TestRespond_KeepsExplicitInstance(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		problem := ErrInternal.WithDetail("flush failed")
		problem.Instance = "/api/boutique/list/nom"
		Respond(c, problem)
	})

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, "/api/boutique/list/nom", problem.Instance)
	require.Equal(t, "flush failed", problem.Detail)
	require.Equal(t, http.StatusInternalServerError, problem.Status)
}
