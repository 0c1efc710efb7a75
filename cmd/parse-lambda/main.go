// Command parse-lambda runs the company info extraction pipeline as a
// standalone Lambda behind API Gateway, so the submission form can prefill
// fields without the full API deployed.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/launchlist/launchlist/internal/extraction"
	"github.com/launchlist/launchlist/pkg/logging"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Authorization, Content-Type",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Content-Type":                 "application/json",
}

type parseRequest struct {
	Text       string `json:"text"`
	WebsiteURL string `json:"website_url"`
	Model      string `json:"model"`
	Search     bool   `json:"search"`
}

func main() {
	logger := logging.New(strings.TrimSpace(os.Getenv("LOG_LEVEL")))

	var svc *extraction.Service
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey != "" {
		client, err := extraction.NewOpenAIClient(apiKey)
		if err != nil {
			logger.Error("openai client init failed", "error", err)
			os.Exit(1)
		}
		svc = extraction.NewService(client, strings.TrimSpace(os.Getenv("OPENAI_MODEL")), logger)
	}

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return handle(ctx, svc, evt)
	})
}

func handle(ctx context.Context, svc *extraction.Service, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))

	if method == http.MethodOptions {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusNoContent, Headers: corsHeaders}, nil
	}
	if method != http.MethodPost {
		return respond(http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"}), nil
	}
	if svc == nil {
		return respond(http.StatusInternalServerError, map[string]string{"error": "OpenAI API key not configured"}), nil
	}

	body, err := decodeBody(evt)
	if err != nil {
		return respond(http.StatusBadRequest, map[string]string{"error": "invalid body"}), nil
	}

	var req parseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return respond(http.StatusBadRequest, map[string]string{"error": "invalid request body"}), nil
	}
	if strings.TrimSpace(req.Text) == "" {
		return respond(http.StatusBadRequest, map[string]string{"error": "Text is required"}), nil
	}

	result, err := svc.Extract(ctx, extraction.Request{
		Text:      req.Text,
		HintedURL: req.WebsiteURL,
		Model:     req.Model,
		UseSearch: req.Search,
	})
	switch {
	case errors.Is(err, extraction.ErrMalformedResponse):
		return respond(http.StatusInternalServerError, map[string]string{"error": "Invalid JSON response from AI"}), nil
	case errors.Is(err, extraction.ErrInference):
		return respond(http.StatusBadGateway, map[string]string{"error": err.Error()}), nil
	case err != nil:
		return respond(http.StatusInternalServerError, map[string]string{"error": "extraction failed"}), nil
	}

	return respond(http.StatusOK, map[string]any{"parsed": result}), nil
}

func respond(status int, body any) events.APIGatewayV2HTTPResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError, Headers: corsHeaders}
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(encoded),
	}
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !evt.IsBase64Encoded {
		return []byte(evt.Body), nil
	}
	return base64.StdEncoding.DecodeString(evt.Body)
}
