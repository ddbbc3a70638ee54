package extractor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"docdigest/pkg/config"
)

// OCRRunner produces text from a scanned PDF.
type OCRRunner interface {
	Run(ctx context.Context, path string) (string, error)
}

// OCRConfig controls the external OCR toolchain.
type OCRConfig struct {
	// PDFToPPMPath is the pdftoppm binary used to rasterize pages.
	// Default: "pdftoppm".
	PDFToPPMPath string

	// TesseractPath is the tesseract binary. Default: "tesseract".
	TesseractPath string

	// DPI is the rasterization resolution. Default: 200.
	DPI int

	// Timeout bounds the whole OCR run across all pages. Default: 2m.
	Timeout time.Duration
}

// LoadOCRConfig reads OCR settings from the environment with defaults.
func LoadOCRConfig() OCRConfig {
	return OCRConfig{
		PDFToPPMPath:  config.GetEnvString("OCR_PDFTOPPM_PATH", "pdftoppm"),
		TesseractPath: config.GetEnvString("OCR_TESSERACT_PATH", "tesseract"),
		DPI:           config.GetEnvInt("OCR_DPI", 200),
		Timeout:       config.GetEnvDuration("OCR_TIMEOUT", 2*time.Minute),
	}
}

// TesseractOCR shells out to pdftoppm to rasterize each page, then runs
// tesseract over the page images. Both tools must be installed on the
// host; use Available to probe before wiring it in.
type TesseractOCR struct {
	cfg OCRConfig
}

// NewTesseractOCR creates an OCR runner with the given configuration.
func NewTesseractOCR(cfg OCRConfig) *TesseractOCR {
	if cfg.PDFToPPMPath == "" {
		cfg.PDFToPPMPath = "pdftoppm"
	}
	if cfg.TesseractPath == "" {
		cfg.TesseractPath = "tesseract"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &TesseractOCR{cfg: cfg}
}

// Available reports whether both external binaries can be resolved.
func (t *TesseractOCR) Available() bool {
	_, err1 := exec.LookPath(t.cfg.PDFToPPMPath)
	_, err2 := exec.LookPath(t.cfg.TesseractPath)
	return err1 == nil && err2 == nil
}

// Run rasterizes the PDF into per-page PNGs in a temp directory and feeds
// each page through tesseract, concatenating the page texts in order.
func (t *TesseractOCR) Run(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "docdigest-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create ocr work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	rasterize := exec.CommandContext(ctx, t.cfg.PDFToPPMPath,
		"-r", fmt.Sprint(t.cfg.DPI), "-png", path, prefix)
	if out, err := rasterize.CombinedOutput(); err != nil {
		return "", fmt.Errorf("rasterize pdf: %w: %s", err, strings.TrimSpace(string(out)))
	}

	images, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", fmt.Errorf("list page images: %w", err)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("rasterize pdf: no page images produced")
	}
	sort.Strings(images)

	var sb strings.Builder
	for _, image := range images {
		recognize := exec.CommandContext(ctx, t.cfg.TesseractPath, image, "stdout")
		out, err := recognize.Output()
		if err != nil {
			return "", fmt.Errorf("ocr page %s: %w", filepath.Base(image), err)
		}
		sb.Write(out)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
