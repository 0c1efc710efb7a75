package extraction

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/launchlist/launchlist/internal/normalize"
	"github.com/launchlist/launchlist/pkg/logging"
)

const (
	parseTemperature  = 0.2
	searchTemperature = 0.3
	parseMaxTokens    = 1000
	searchMaxTokens   = 1500
)

// Request describes one extraction run.
type Request struct {
	// Text is the free-form input to parse. Required.
	Text string
	// HintedURL is used when Text itself contains no URL.
	HintedURL string
	// Model overrides the service default when set.
	Model string
	// UseSearch selects the enriched "search and compile" prompt variant.
	UseSearch bool
}

// Service turns free-form text into a normalized company record fragment.
// It is stateless between calls; the only suspension point is the model call.
type Service struct {
	client LLMClient
	model  string
	logger *logging.Logger
	tracer trace.Tracer
}

// NewService creates an extraction service.
func NewService(client LLMClient, model string, logger *logging.Logger) *Service {
	if client == nil {
		panic("extraction: llm client cannot be nil")
	}
	if model == "" {
		model = "gpt-4o-2024-08-06"
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		client: client,
		model:  model,
		logger: logger,
		tracer: otel.Tracer("launchlist.internal.extraction"),
	}
}

// Extract runs the pipeline: URL detection, prompt construction, a single
// model call (no retry), tolerant decode, then normalization. A failed call
// surfaces as ErrInference; unparseable output as ErrMalformedResponse.
// Callers must treat both as expected outcomes, not system faults.
func (s *Service) Extract(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		extractionsTotal.WithLabelValues(outcomeEmpty).Inc()
		return nil, ErrEmptyInput
	}

	detectedURL := normalize.FirstURL(req.Text)
	if detectedURL == "" {
		detectedURL = strings.TrimSpace(req.HintedURL)
	}

	model := req.Model
	if model == "" {
		model = s.model
	}

	system := parseSystemPrompt
	prompt := parsePrompt(req.Text, detectedURL)
	temperature := float32(parseTemperature)
	maxTokens := int32(parseMaxTokens)
	if req.UseSearch {
		system = searchSystemPrompt
		prompt = searchPrompt(req.Text, detectedURL)
		temperature = searchTemperature
		maxTokens = searchMaxTokens
	}

	ctx, span := s.tracer.Start(ctx, "extraction.extract")
	defer span.End()
	span.SetAttributes(
		attribute.String("launchlist.model", model),
		attribute.Bool("launchlist.use_search", req.UseSearch),
		attribute.Bool("launchlist.url_detected", detectedURL != ""),
	)

	resp, err := s.client.Complete(ctx, CompletionRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: ChatRoleSystem, Content: system},
			{Role: ChatRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		extractionsTotal.WithLabelValues(outcomeInference).Inc()
		s.logger.Warn("model call failed", "model", model, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		extractionsTotal.WithLabelValues(outcomeInference).Inc()
		return nil, fmt.Errorf("%w: no response from model", ErrInference)
	}

	fields, err := decodeModelJSON(resp.Text)
	if err != nil {
		extractionsTotal.WithLabelValues(outcomeMalformed).Inc()
		s.logger.Warn("unparseable model output", "model", model, "length", len(resp.Text))
		return nil, err
	}

	result := resultFromFields(fields)
	extractionsTotal.WithLabelValues(outcomeOK).Inc()
	s.logger.Info("extraction complete",
		"model", model,
		"company_name", result.CompanyName,
		"use_search", req.UseSearch,
	)
	return result, nil
}
