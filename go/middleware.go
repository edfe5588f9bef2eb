package boutiqueserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

const resolvedStoreKey = "boutiques.resolvedStore"

// corsMiddleware allows any origin and answers preflight requests directly.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		header.Set("Content-Type", "application/json")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger == nil {
			return
		}
		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// resolveStore loads the store named by the :id path parameter before the handler runs.
// Unknown or malformed ids abort with notFoundStatus.
func resolveStore(service ports.Service, notFoundStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id int64
		err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
		if err != nil {
			abortWithEnvelope(c, notFoundStatus, storeNotFoundMessage)
			return
		}
		store, err := service.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				abortWithEnvelope(c, notFoundStatus, storeNotFoundMessage)
				return
			}
			abortWithEnvelope(c, http.StatusBadRequest, fmt.Sprintf(lookupFailedMessage, err))
			return
		}
		c.Set(resolvedStoreKey, store)
		c.Next()
	}
}

func resolvedStore(c *gin.Context) (*domain.Store, bool) {
	value, ok := c.Get(resolvedStoreKey)
	if !ok {
		return nil, false
	}
	store, ok := value.(*domain.Store)
	return store, ok && store != nil
}
