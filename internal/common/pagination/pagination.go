// Package pagination provides offset-based pagination for list endpoints.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	"docdigest/pkg/config"
)

// Config holds pagination limits. Values can be overridden through
// environment variables.
type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// LoadFromEnv loads pagination config from PAGINATION_DEFAULT_LIMIT and
// PAGINATION_MAX_LIMIT, falling back to 20 and 100.
func LoadFromEnv() Config {
	return Config{
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", 20),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", 100),
	}
}

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // items per page
}

// ParseQueryParams parses the page and limit query parameters, applying
// the config defaults when they are absent. Returns an error for
// non-numeric, non-positive or out-of-range values.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	params := Params{
		Page:  1,
		Limit: cfg.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > cfg.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", cfg.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Offset converts the 1-based page number into a row offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Metadata contains pagination metadata included in list responses.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewMetadata builds response metadata for the given params and total row
// count. An empty result set still reports one page.
func NewMetadata(params Params, total int64) Metadata {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}

// Response is a generic paginated response wrapper.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates a paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{Data: data, Pagination: metadata}
}
