package http

import (
	"net/http"
	"time"

	"docdigest/internal/common/pagination"
	"docdigest/internal/domain/entity"
	"docdigest/internal/handler/http/pathutil"
	"docdigest/internal/handler/http/respond"
	"docdigest/internal/repository"
)

// ReportDTO is the JSON shape of one stored report.
type ReportDTO struct {
	ID          string   `json:"id"`
	Filename    string   `json:"filename"`
	DetailLevel string   `json:"detail_level"`
	Model       string   `json:"model,omitempty"`
	Summary     string   `json:"summary"`
	Bullets     []string `json:"bullets"`
	Pages       int      `json:"pages"`
	OCRUsed     bool     `json:"ocr_used"`
	CreatedAt   string   `json:"created_at"`
}

// ListReportsHandler returns stored reports, newest first, paginated
// through the "page" and "limit" query parameters.
type ListReportsHandler struct {
	Repo       repository.ReportRepository
	Pagination pagination.Config
}

func (h *ListReportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	total, err := h.Repo.Count(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	reports, err := h.Repo.List(r.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]ReportDTO, 0, len(reports))
	for _, report := range reports {
		out = append(out, toReportDTO(report))
	}
	respond.JSON(w, http.StatusOK,
		pagination.NewResponse(out, pagination.NewMetadata(params, total)))
}

// GetReportHandler returns one stored report by ID.
type GetReportHandler struct {
	Repo repository.ReportRepository
}

func (h *GetReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/reports/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toReportDTO(report))
}

func toReportDTO(report *entity.Report) ReportDTO {
	return ReportDTO{
		ID:          report.ID,
		Filename:    report.Filename,
		DetailLevel: string(report.DetailLevel),
		Model:       report.Model,
		Summary:     report.Summary,
		Bullets:     report.Bullets,
		Pages:       report.Pages,
		OCRUsed:     report.OCRUsed,
		CreatedAt:   report.CreatedAt.UTC().Format(time.RFC3339),
	}
}
