package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdigest/internal/domain/entity"
	"docdigest/internal/infra/extractor"
	"docdigest/internal/usecase/document"
	"docdigest/internal/usecase/summarize"
)

type echoSummarizer struct{}

func (echoSummarizer) Summarize(_ context.Context, text string, maxLength, _ int) (string, error) {
	if len(text) > maxLength {
		text = text[:maxLength]
	}
	return text, nil
}

func newTestDocumentService(t *testing.T) *document.Service {
	t.Helper()
	factory := func(string) (document.Pipeline, error) {
		return summarize.NewService(echoSummarizer{}), nil
	}
	return document.NewService(extractor.NewService(nil), factory, nil)
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader(content))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSummarizeHandler(t *testing.T) {
	handler := &SummarizeHandler{Svc: newTestDocumentService(t)}

	content := strings.Repeat("The quarterly review covers revenue and costs in detail. ", 10)
	req := multipartUpload(t, "review.txt", content, map[string]string{
		"detail_level": "brief",
	})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Summary)
	assert.NotEmpty(t, resp.BulletPoints)
	assert.Equal(t, "brief", resp.DetailLevel)
	assert.Equal(t, 1, resp.Statistics.Pages)
	assert.Equal(t, len(content), resp.Statistics.OriginalChars)
	assert.Equal(t, len(resp.BulletPoints), resp.Statistics.BulletCount)
}

func TestSummarizeHandler_MethodNotAllowed(t *testing.T) {
	handler := &SummarizeHandler{Svc: newTestDocumentService(t)}

	req := httptest.NewRequest(http.MethodGet, "/summarize", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSummarizeHandler_MissingFile(t *testing.T) {
	handler := &SummarizeHandler{Svc: newTestDocumentService(t)}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("detail_level", "brief"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file is required")
}

func TestSummarizeHandler_InvalidDetailLevel(t *testing.T) {
	handler := &SummarizeHandler{Svc: newTestDocumentService(t)}

	req := multipartUpload(t, "doc.txt", "some document content here", map[string]string{
		"detail_level": "extreme",
	})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarizeHandler_UnsupportedFileType(t *testing.T) {
	handler := &SummarizeHandler{Svc: newTestDocumentService(t)}

	req := multipartUpload(t, "image.png", "binary-ish", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarizeHandler_EmptyDocument(t *testing.T) {
	handler := &SummarizeHandler{Svc: newTestDocumentService(t)}

	req := multipartUpload(t, "blank.txt", "   \n ", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no extractable text")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &entity.ValidationError{Field: "x", Message: "y"}, want: http.StatusBadRequest},
		{name: "invalid input", err: entity.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "no text", err: entity.ErrNoExtractableText, want: http.StatusBadRequest},
		{name: "not found", err: entity.ErrNotFound, want: http.StatusNotFound},
		{name: "other", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
