// Package extraction converts uploaded resume files into normalized plain text.
//
// Extraction runs a sequence of strategies in order of increasing cost:
// the embedded PDF text layer first, then OCR over rendered page images.
// The first strategy whose raw output reaches the configured minimum
// length wins and later strategies never run. Extraction is total:
// strategy failures are logged and the best available text (possibly
// empty) is returned.
package extraction

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Strategy produces text from raw file bytes.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, data []byte) (string, error)
}

// System extracts normalized text from uploaded resume files.
type System interface {
	// Extract returns normalized resume text. It never fails; when no
	// strategy produces enough text, the longest result is normalized
	// and returned, which may be empty.
	Extract(ctx context.Context, data []byte) string
}

type extractor struct {
	strategies []Strategy
	minLength  int
	logger     *slog.Logger
}

// New creates an extraction system with the default strategy sequence.
func New(cfg *Config, logger *slog.Logger) System {
	return &extractor{
		strategies: []Strategy{
			directStrategy{},
			newOCRStrategy(cfg),
		},
		minLength: cfg.MinTextLength,
		logger:    logger.With("system", "extraction"),
	}
}

// NewWithStrategies creates an extraction system with an explicit
// strategy sequence.
func NewWithStrategies(cfg *Config, logger *slog.Logger, strategies ...Strategy) System {
	return &extractor{
		strategies: strategies,
		minLength:  cfg.MinTextLength,
		logger:     logger.With("system", "extraction"),
	}
}

// Extract runs the strategy sequence against the raw output length so
// the fallback decision matches what each strategy actually produced.
// Normalization collapses whitespace and must not influence which
// strategy wins; only the winning text is normalized.
func (e *extractor) Extract(ctx context.Context, data []byte) string {
	best := ""

	for _, strategy := range e.strategies {
		raw, err := strategy.Extract(ctx, data)
		if err != nil {
			e.logger.Warn("extraction strategy failed",
				"strategy", strategy.Name(),
				"error", err,
			)
			continue
		}

		raw = strings.TrimSpace(raw)
		length := utf8.RuneCountInString(raw)

		if length >= e.minLength {
			e.logger.Info("resume text extracted",
				"strategy", strategy.Name(),
				"length", length,
			)
			return Normalize(raw)
		}

		e.logger.Info("extraction strategy produced insufficient text",
			"strategy", strategy.Name(),
			"length", length,
			"minimum", e.minLength,
		)

		if length > utf8.RuneCountInString(best) {
			best = raw
		}
	}

	return Normalize(best)
}
