package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/verdantlog/utils"
)

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "/api/v1/streak", nil)
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}

	AuthRequired()(ctx)
	return w, ctx.IsAborted()
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	w, aborted := runAuth(t, "")
	assert.True(t, aborted)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 40101, resp.Code)
}

func TestAuthRequiredWrongScheme(t *testing.T) {
	w, aborted := runAuth(t, "Basic dXNlcjpwYXNz")
	assert.True(t, aborted)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredEmptyToken(t *testing.T) {
	w, aborted := runAuth(t, "Bearer ")
	assert.True(t, aborted)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
