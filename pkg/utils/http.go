package utils

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam reads a uint URL parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, errors.New("missing " + name + " parameter")
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(v), nil
}

// ParseUintQuery reads an optional uint query parameter, returning nil when
// absent or unparsable.
func ParseUintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

// Pagination reads page/page_size query parameters with sane bounds.
func Pagination(c *gin.Context, defaultSize int) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultSize
	}
	return page, pageSize
}

// CleanNextURL sanitises a client-provided return URL: transient query
// parameters are stripped so redirect targets do not accumulate state.
// Falls back when the URL is empty or unparsable.
func CleanNextURL(next, fallback string) string {
	if next == "" {
		return fallback
	}

	unquoted, err := url.QueryUnescape(next)
	if err != nil {
		return fallback
	}

	u, err := url.Parse(unquoted)
	if err != nil {
		return fallback
	}

	q := u.Query()
	for _, param := range []string{"next", "sprint", "epic"} {
		q.Del(param)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// RefererURL returns the Referer header, or the fallback when absent.
func RefererURL(c *gin.Context, fallback string) string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return ref
	}
	return fallback
}
