package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

// --------------------- Pagination ---------------------
func TestPagination_Defaults(t *testing.T) {
	c := testContext("/issues")

	page, size := Pagination(c, 12)
	assert.Equal(t, 1, page)
	assert.Equal(t, 12, size)
}

func TestPagination_Bounds(t *testing.T) {
	cases := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"page=3&page_size=25", 3, 25},
		{"page=0&page_size=0", 1, 12},
		{"page=-2&page_size=500", 1, 12},
		{"page=abc&page_size=xyz", 1, 12},
	}
	for _, tc := range cases {
		c := testContext("/issues?" + tc.query)
		page, size := Pagination(c, 12)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.pageSize, size, tc.query)
	}
}

// --------------------- ParseUintQuery ---------------------
func TestParseUintQuery(t *testing.T) {
	c := testContext("/issues?p_id=7&assignee_id=oops")

	pid := ParseUintQuery(c, "p_id")
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(7), *pid)
	}
	assert.Nil(t, ParseUintQuery(c, "assignee_id"))
	assert.Nil(t, ParseUintQuery(c, "sprint_id"))
}

// --------------------- CleanNextURL ---------------------
func TestCleanNextURL_StripsTransientParams(t *testing.T) {
	got := CleanNextURL("/w/acme/backlog?sprint=4&epic=2&p_id=9", "/")
	assert.Equal(t, "/w/acme/backlog?p_id=9", got)
}

func TestCleanNextURL_UnescapesBeforeParsing(t *testing.T) {
	got := CleanNextURL("%2Fw%2Facme%2Fbacklog%3Fnext%3D%2Fhome", "/")
	assert.Equal(t, "/w/acme/backlog", got)
}

func TestCleanNextURL_Fallbacks(t *testing.T) {
	assert.Equal(t, "/boards", CleanNextURL("", "/boards"))
	assert.Equal(t, "/boards", CleanNextURL("%zz", "/boards"))
}

// --------------------- RefererURL ---------------------
func TestRefererURL(t *testing.T) {
	c := testContext("/bulk")
	c.Request.Header.Set("Referer", "/w/acme/backlog")
	assert.Equal(t, "/w/acme/backlog", RefererURL(c, "/"))

	c = testContext("/bulk")
	assert.Equal(t, "/", RefererURL(c, "/"))
}
