package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRequestID はRequestIDミドルウェアを検証する。
func TestRequestID(t *testing.T) {
	t.Parallel()

	run := func(incoming string) (header, inContext string) {
		router := gin.New()
		router.Use(RequestID())
		router.POST("/test", func(c *gin.Context) {
			inContext = GetRequestID(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		if incoming != "" {
			req.Header.Set(HeaderRequestID, incoming)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Header().Get(HeaderRequestID), inContext
	}

	t.Run("ヘッダーが無い場合UUIDが生成されること", func(t *testing.T) {
		t.Parallel()

		header, inContext := run("")
		if _, err := uuid.Parse(header); err != nil {
			t.Errorf("X-Request-ID = %q はUUIDではない: %v", header, err)
		}
		if inContext != header {
			t.Errorf("コンテキストのID = %q, want %q", inContext, header)
		}
	})

	t.Run("クライアントのIDが引き継がれること", func(t *testing.T) {
		t.Parallel()

		header, inContext := run("client-id-1")
		if header != "client-id-1" || inContext != "client-id-1" {
			t.Errorf("ID = %q/%q, want %q", header, inContext, "client-id-1")
		}
	})

	t.Run("長すぎるIDは破棄されて再生成されること", func(t *testing.T) {
		t.Parallel()

		header, _ := run(strings.Repeat("x", maxRequestIDLength+1))
		if _, err := uuid.Parse(header); err != nil {
			t.Errorf("X-Request-ID = %q はUUIDではない: %v", header, err)
		}
	})

	t.Run("ミドルウェア未適用の場合は空文字列が返ること", func(t *testing.T) {
		t.Parallel()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if got := GetRequestID(c); got != "" {
			t.Errorf("GetRequestID() = %q, want empty string", got)
		}
	})
}
