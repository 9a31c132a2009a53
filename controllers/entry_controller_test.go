package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/verdantlog/footprint"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", url, nil)
	return ctx
}

func TestParseRangeDefaultsToLastThirtyDays(t *testing.T) {
	ctx := testContext(t, "/api/v1/entries")

	from, to, err := parseRange(ctx)
	require.NoError(t, err)

	today := footprint.DateOf(time.Now())
	assert.True(t, to.Equal(today))
	assert.True(t, from.Equal(today.AddDate(0, 0, -29)))
}

func TestParseRangeExplicitBounds(t *testing.T) {
	ctx := testContext(t, "/api/v1/entries?from=2025-03-01&to=2025-03-15")

	from, to, err := parseRange(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", from.Format(dateLayout))
	assert.Equal(t, "2025-03-15", to.Format(dateLayout))
}

func TestParseRangeRejectsMalformedDates(t *testing.T) {
	ctx := testContext(t, "/api/v1/entries?from=03/01/2025")
	_, _, err := parseRange(ctx)
	assert.Error(t, err)

	ctx = testContext(t, "/api/v1/entries?to=yesterday")
	_, _, err = parseRange(ctx)
	assert.Error(t, err)
}

func TestParseRangeRejectsInvertedRange(t *testing.T) {
	ctx := testContext(t, "/api/v1/entries?from=2025-03-15&to=2025-03-01")
	_, _, err := parseRange(ctx)
	assert.Error(t, err)
}
