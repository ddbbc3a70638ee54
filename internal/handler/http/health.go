package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"docdigest/internal/handler/http/respond"
)

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus reports the state of one health check item.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports service health. The database check is skipped when
// persistence is disabled (nil DB).
type HealthHandler struct {
	DB      *sql.DB
	Version string

	// OCRAvailable reports whether the OCR toolchain was found at startup.
	OCRAvailable bool
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	healthy := true

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = CheckStatus{Status: "unhealthy", Message: err.Error()}
			healthy = false
		} else {
			checks["database"] = CheckStatus{Status: "healthy"}
		}
	} else {
		checks["database"] = CheckStatus{Status: "disabled"}
	}

	// OCR is a degraded mode, not a failure: scanned PDFs are rejected
	// while text-layer PDFs still work.
	if h.OCRAvailable {
		checks["ocr"] = CheckStatus{Status: "healthy"}
	} else {
		checks["ocr"] = CheckStatus{Status: "disabled", Message: "pdftoppm or tesseract not found"}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// LiveHandler answers liveness probes. It only proves the process serves
// requests.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
