package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/talentsift/sift/pkg/formatting"
)

const systemPrompt = "You are a precise JSON output generator for resume screening. " +
	"Always return valid JSON and nothing else."

const promptTemplate = `Analyze the resume against the job description.
Return ONLY JSON in this format:

{
  "skills_match": float(0-1),
  "experience_years": int,
  "domain_relevance": float(0-1),
  "red_flags": list of strings,
  "confidence": float(0-1),
  "summary": str
}

Resume:
%s

Job Description:
%s`

type anthropicEvaluator struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	apiKey    string
	logger    *slog.Logger
}

// New creates an evaluation system backed by the Anthropic Messages API.
func New(cfg *Config, logger *slog.Logger) System {
	return &anthropicEvaluator{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		apiKey:    cfg.APIKey,
		logger:    logger.With("system", "evaluation"),
	}
}

func (e *anthropicEvaluator) Evaluate(ctx context.Context, resumeText, jobDescription string) (Scorecard, error) {
	if e.apiKey == "" {
		return Scorecard{}, ErrNotConfigured
	}

	prompt := fmt.Sprintf(promptTemplate, resumeText, jobDescription)

	message, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return Scorecard{}, fmt.Errorf("evaluate resume: %w", err)
	}

	for _, block := range message.Content {
		if block.Type != "text" {
			continue
		}

		scorecard, err := formatting.Parse[Scorecard](block.Text)
		if err != nil {
			if errors.Is(err, formatting.ErrParseFailed) {
				return Scorecard{}, fmt.Errorf("%w: %s", ErrInvalidResponse, block.Text)
			}
			return Scorecard{}, err
		}

		e.logger.Info("resume evaluated",
			"skills_match", scorecard.SkillsMatch,
			"confidence", scorecard.Confidence,
			"tokens_in", message.Usage.InputTokens,
			"tokens_out", message.Usage.OutputTokens,
		)
		return scorecard, nil
	}

	return Scorecard{}, fmt.Errorf("%w: no text content in response", ErrInvalidResponse)
}
