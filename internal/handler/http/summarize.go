package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"docdigest/internal/domain/entity"
	"docdigest/internal/handler/http/respond"
	"docdigest/internal/usecase/document"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger uploads spill to disk.
const maxMultipartMemory = 32 << 20

// SummarizeResponse is the JSON body returned for a processed document.
type SummarizeResponse struct {
	ReportID     string       `json:"report_id,omitempty"`
	Summary      string       `json:"summary"`
	BulletPoints []string     `json:"bullet_points"`
	DetailLevel  string       `json:"detail_level"`
	Model        string       `json:"model,omitempty"`
	Statistics   SummaryStats `json:"statistics"`
}

// SummaryStats carries the derived numbers displayed alongside a summary.
type SummaryStats struct {
	Pages            int  `json:"pages"`
	OCRUsed          bool `json:"ocr_used"`
	OriginalChars    int  `json:"original_chars"`
	OriginalWords    int  `json:"original_words"`
	SummaryChars     int  `json:"summary_chars"`
	CompressionRatio int  `json:"compression_ratio"`
	ChunkCount       int  `json:"chunk_count"`
	FailedChunks     int  `json:"failed_chunks"`
	BulletCount      int  `json:"bullet_count"`
}

// SummarizeHandler accepts a multipart document upload and returns its
// bullet-point summary.
//
// Form fields: "file" (the document), "detail_level" (brief, detailed or
// comprehensive; optional), "model_name" (optional, passed through to the
// summarizer unchanged).
type SummarizeHandler struct {
	Svc *document.Service

	// Parallelism bounds concurrent chunk summarization per request.
	// Zero keeps chunks sequential.
	Parallelism int
}

func (h *SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.Error(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			fmt.Errorf("invalid multipart request: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("file is required"))
		return
	}
	defer func() { _ = file.Close() }()

	path, cleanup, err := spoolUpload(file, header.Filename)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cleanup()

	result, err := h.Svc.Process(r.Context(), document.Request{
		Path:        path,
		Filename:    header.Filename,
		DetailLevel: entity.DetailLevel(r.FormValue("detail_level")),
		Model:       r.FormValue("model_name"),
		Parallelism: h.Parallelism,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	summary := result.Summary
	respond.JSON(w, http.StatusOK, SummarizeResponse{
		ReportID:     result.ReportID,
		Summary:      summary.Text,
		BulletPoints: summary.Bullets,
		DetailLevel:  string(summary.DetailLevel),
		Model:        summary.Model,
		Statistics: SummaryStats{
			Pages:            result.Pages,
			OCRUsed:          result.OCRUsed,
			OriginalChars:    result.Chars,
			OriginalWords:    result.Words,
			SummaryChars:     summary.SummaryLength,
			CompressionRatio: summary.CompressionRatio,
			ChunkCount:       summary.ChunkCount,
			FailedChunks:     summary.FailedChunks,
			BulletCount:      len(summary.Bullets),
		},
	})
}

// spoolUpload writes the uploaded file to a temp path, keeping the original
// extension so the extractor can route by file type.
func spoolUpload(src io.Reader, filename string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "docdigest-upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", nil, fmt.Errorf("spool upload: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("spool upload: %w", err)
	}
	return tmp.Name(), cleanup, nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrNoExtractableText):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
