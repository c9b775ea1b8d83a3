package vertexai

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/config"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
)

// pdfMIMEType is the media type attached to every uploaded page part
const pdfMIMEType = "application/pdf"

// GeminiExtractor extracts document fields and classifies documents through a
// Vertex AI Gemini model. It implements extraction.FieldExtractor and
// extraction.DocumentClassifier.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logger.Logger
}

// NewGeminiExtractor creates a GeminiExtractor from the vertex settings. The
// returned extractor holds a live client connection and must be closed when
// no longer needed.
func NewGeminiExtractor(ctx context.Context, settings *config.VertexSettings, logger logger.Logger) (*GeminiExtractor, error) {
	var opts []option.ClientOption
	if settings.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(settings.Endpoint))
	}
	if settings.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(settings.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, settings.ProjectID, settings.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(settings.Model)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
	}

	logger.Info("Loaded Vertex AI model ", settings.Model, " at ", settings.APIEndpoint())

	return &GeminiExtractor{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Close releases the underlying client connection
func (g *GeminiExtractor) Close() error {
	return g.client.Close()
}

// ExtractFields sends all pages of one document group to the model together
// with the field catalog for its type and decodes the structured response.
func (g *GeminiExtractor) ExtractFields(ctx context.Context, request *extraction.ExtractionRequest) (*extraction.DocumentResult, error) {
	prompt := renderExtractionPrompt(request.CaseID, request.DocumentType, len(request.Pages), request.Fields)

	g.logger.Info("Sending extraction request for case ", request.CaseID, ", doc ", request.DocumentType, ", pages ", len(request.Pages))

	text, err := g.generate(ctx, prompt, request.Pages)
	if err != nil {
		return nil, err
	}

	fields, rawFields, err := parseExtractionResponse(text)
	if err != nil {
		g.logger.Error("Failed to decode extraction response for case ", request.CaseID, ", doc ", request.DocumentType, ": ", err)
		return nil, err
	}

	return &extraction.DocumentResult{
		CaseID:       request.CaseID,
		DocumentType: request.DocumentType,
		Fields:       fields,
		RawFields:    rawFields,
	}, nil
}

// ClassifyDocument asks the model to pick one of acceptableTypes for the
// given pages. The model answers UNKNOWN when nothing fits.
func (g *GeminiExtractor) ClassifyDocument(ctx context.Context, pages [][]byte, acceptableTypes []string) (*extraction.ClassificationResult, error) {
	prompt := renderClassificationPrompt(len(pages), acceptableTypes)

	text, err := g.generate(ctx, prompt, pages)
	if err != nil {
		return nil, err
	}

	result, err := parseClassificationResponse(text)
	if err != nil {
		g.logger.Error("Failed to decode classification response: ", err)
		return nil, err
	}

	return result, nil
}

// generate runs one model call over a prompt plus PDF page parts and returns
// the concatenated text of the first candidate.
func (g *GeminiExtractor) generate(ctx context.Context, prompt string, pages [][]byte) (string, error) {
	parts := make([]genai.Part, 0, len(pages)+1)
	parts = append(parts, genai.Text(prompt))
	for _, page := range pages {
		parts = append(parts, genai.Blob{MIMEType: pdfMIMEType, Data: page})
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", &extraction.APICallError{Err: err}
	}

	if len(resp.Candidates) == 0 {
		return "", extraction.ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		g.logger.Error("Content blocked by the model, finish reason ", candidate.FinishReason)
		return "", &extraction.BlockedError{FinishReason: candidate.FinishReason.String()}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", extraction.ErrEmptyResponse
	}

	return sb.String(), nil
}
