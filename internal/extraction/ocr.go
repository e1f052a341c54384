package extraction

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

var pageNumberPattern = regexp.MustCompile(`-(\d+)\.png$`)

// ocrStrategy renders PDF pages to images and recognizes text per page.
// Slower than the direct strategy but works for scanned documents.
type ocrStrategy struct {
	rendererPath   string
	recognizerPath string
	dpi            int
	concurrency    int
}

func newOCRStrategy(cfg *Config) *ocrStrategy {
	return &ocrStrategy{
		rendererPath:   cfg.RendererPath,
		recognizerPath: cfg.RecognizerPath,
		dpi:            cfg.RenderDPI,
		concurrency:    cfg.OCRConcurrency,
	}
}

func (s *ocrStrategy) Name() string {
	return "ocr"
}

func (s *ocrStrategy) Extract(ctx context.Context, data []byte) (string, error) {
	workDir, err := os.MkdirTemp("", "sift-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create ocr workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return "", fmt.Errorf("stage pdf for rendering: %w", err)
	}

	pages, err := s.renderPages(ctx, workDir, pdfPath)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("renderer produced no pages")
	}

	texts := make([]string, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, page := range pages {
		g.Go(func() error {
			text, err := s.recognizePage(gctx, page)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(texts, "\n"), nil
}

// renderPages invokes the renderer to produce one PNG per page and
// returns the image paths in page order.
func (s *ocrStrategy) renderPages(ctx context.Context, workDir, pdfPath string) ([]string, error) {
	prefix := filepath.Join(workDir, "page")

	cmd := exec.CommandContext(ctx,
		s.rendererPath,
		"-png",
		"-r", strconv.Itoa(s.dpi),
		pdfPath,
		prefix,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("render pdf pages: %w: %s", err, strings.TrimSpace(string(output)))
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("list rendered pages: %w", err)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pageNumber(pages[i]) < pageNumber(pages[j])
	})

	return pages, nil
}

func (s *ocrStrategy) recognizePage(ctx context.Context, imagePath string) (string, error) {
	cmd := exec.CommandContext(ctx, s.recognizerPath, imagePath, "stdout")

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("recognize page %s: %w: %s",
			filepath.Base(imagePath), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func pageNumber(path string) int {
	matches := pageNumberPattern.FindStringSubmatch(path)
	if len(matches) < 2 {
		return 0
	}
	n, _ := strconv.Atoi(matches[1])
	return n
}
