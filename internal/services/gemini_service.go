// internal/services/gemini_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/beatbazaar/beatbazaar/internal/config"
	"github.com/beatbazaar/beatbazaar/internal/models"
	"github.com/beatbazaar/beatbazaar/internal/utils"
)

// MockProducerName is the display name attached to AI-generated drafts.
const MockProducerName = "AI Producer"

// GeminiService wraps the generative-language collaborator. Every operation
// resolves to a well-typed value: a missing credential routes to canned mock
// output, and upstream or parse failures route to fixed error-indicator
// values. Callers never see an error from the suggestion paths.
type GeminiService struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
}

// TitleSuggestion carries candidate titles plus the extraction tier that
// produced them, so callers (and tests) can tell a strict JSON parse from a
// heuristic recovery.
type TitleSuggestion struct {
	Titles []string  `json:"titles"`
	Tier   ParseTier `json:"tier"`
}

// ProductDraft is a synthesized product with every field populated. Price is
// never taken from the model output; it is always randomized locally.
type ProductDraft struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Price         float64      `json:"price"`
	Genre         models.Genre `json:"genre"`
	Tags          []string     `json:"tags"`
	Producer      string       `json:"producer"`
	CoverImageURL string       `json:"cover_image_url"`
	AudioFileURL  string       `json:"audio_file_url"`
}

var (
	mockTitles  = []string{"Mock Title 1", "Mock Title 2", "Creative Beat Name"}
	errorTitles = []string{"AI Suggestion Error - Title 1", "AI Suggestion Error - Title 2"}
)

const errorDescription = "Error generating AI description. Please try again or write one manually."

func NewGeminiService(cfg config.GeminiConfig) *GeminiService {
	if cfg.APIKey == "" {
		logrus.Warn("Gemini API key not found. AI features will run against mock data. " +
			"Set the GEMINI_API_KEY environment variable to enable them.")
	}

	// No client timeout: calls run to completion or failure, bounded only
	// by the caller's context.
	return &GeminiService{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// SuggestTitles asks for a short list of candidate titles. The upstream is
// prompted for a JSON array of strings but may wrap it in a code fence or
// return loose text; the extraction pipeline copes with both.
func (s *GeminiService) SuggestTitles(ctx context.Context, req models.SuggestionRequest) TitleSuggestion {
	if s.cfg.APIKey == "" {
		s.mockDelay(ctx)
		return TitleSuggestion{Titles: append([]string(nil), mockTitles...), Tier: ParseTierFallback}
	}

	text, err := s.generateContent(ctx, titlePrompt(req.Keywords), true)
	if err != nil {
		logrus.WithError(err).Error("Gemini title suggestion failed")
		return TitleSuggestion{Titles: append([]string(nil), errorTitles...), Tier: ParseTierFallback}
	}

	titles, tier := ExtractTitles(text)
	if tier != ParseTierStrict {
		logrus.WithFields(logrus.Fields{
			"tier": tier,
			"raw":  text,
		}).Warn("Gemini title response was not strict JSON")
	}
	return TitleSuggestion{Titles: titles, Tier: tier}
}

// SuggestDescription asks for a single promotional paragraph. A title from
// the request context anchors the prompt; "Untitled Beat" stands in when the
// caller has none yet.
func (s *GeminiService) SuggestDescription(ctx context.Context, req models.SuggestionRequest) string {
	if s.cfg.APIKey == "" {
		s.mockDelay(ctx)
		title := req.ProductInfo.Title
		if title == "" {
			title = "your amazing beat"
		}
		return fmt.Sprintf("This is a mock description for %s. It's truly fantastic!", title)
	}

	title := req.ProductInfo.Title
	if title == "" {
		title = "Untitled Beat"
	}

	text, err := s.generateContent(ctx, descriptionPrompt(title, req.Keywords, req.ProductInfo.Genre), false)
	if err != nil {
		logrus.WithError(err).Error("Gemini description suggestion failed")
		return errorDescription
	}
	return text
}

// GenerateProduct synthesizes a full product draft from a keyword phrase.
// Each field is defaulted independently when the model omits it; the genre
// is validated against the closed set; the price is always randomized
// locally. Any failure resolves to a fixed, fully populated error draft.
func (s *GeminiService) GenerateProduct(ctx context.Context, keywords string) ProductDraft {
	if s.cfg.APIKey == "" {
		s.mockDelay(ctx)
		return ProductDraft{
			Title:         "AI Generated Dreamscape",
			Description:   "A dreamy and atmospheric track, perfect for relaxation or study sessions. Created by AI.",
			Price:         randomPrice(10, 10),
			Genre:         models.GenreAmbient,
			Tags:          []string{"dreamy", "atmospheric", "chill", "ai"},
			Producer:      MockProducerName,
			CoverImageURL: utils.PlaceholderCoverURL(strconv.FormatInt(time.Now().UnixMilli(), 10)),
			AudioFileURL:  "mock_audio.mp3",
		}
	}

	text, err := s.generateContent(ctx, productPrompt(keywords), true)
	if err != nil {
		logrus.WithError(err).Error("Gemini product synthesis failed")
		return errorProductDraft()
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(StripFence(text)), &parsed); err != nil {
		logrus.WithError(err).WithField("raw", text).Error("Gemini product response was not a JSON object")
		return errorProductDraft()
	}

	title := stringField(parsed, "title", "AI Generated Beat")

	coverSeed := stringField(parsed, "title", "")
	if coverSeed == "" {
		coverSeed = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	return ProductDraft{
		Title:         title,
		Description:   stringField(parsed, "description", "An AI generated beat."),
		Price:         randomPrice(10, 10),
		Genre:         models.NormalizeGenre(stringField(parsed, "genre", "")),
		Tags:          tagsField(parsed),
		Producer:      MockProducerName,
		CoverImageURL: utils.PlaceholderCoverURL(coverSeed),
		AudioFileURL:  "mock_audio.mp3",
	}
}

func errorProductDraft() ProductDraft {
	return ProductDraft{
		Title:         "AI Error Beat",
		Description:   "Failed to generate beat details with AI.",
		Price:         10.00,
		Genre:         models.GenreOther,
		Tags:          []string{"error", "ai"},
		Producer:      MockProducerName,
		CoverImageURL: utils.PlaceholderCoverURL("error"),
		AudioFileURL:  "mock_audio.mp3",
	}
}

// stringField picks a non-empty string out of a loosely typed payload,
// defaulting when the key is missing or has the wrong type.
func stringField(payload map[string]interface{}, key, fallback string) string {
	if value, ok := payload[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

func tagsField(payload map[string]interface{}) []string {
	raw, ok := payload["tags"].([]interface{})
	if !ok {
		return []string{"ai", "generated"}
	}
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		tags = append(tags, fmt.Sprintf("%v", t))
	}
	return tags
}

// randomPrice returns base plus a random amount below spread, in cents.
func randomPrice(base, spread float64) float64 {
	return utils.RoundPrice(base + rand.Float64()*spread)
}

func (s *GeminiService) mockDelay(ctx context.Context) {
	select {
	case <-time.After(time.Duration(s.cfg.MockDelayMs) * time.Millisecond):
	case <-ctx.Done():
	}
}

// --- prompts ---

func titlePrompt(keywords string) string {
	if keywords == "" {
		keywords = "versatile, modern"
	}
	return fmt.Sprintf(`Suggest 3 catchy and professional titles for a music beat with the following characteristics or keywords: %q. Titles should be concise, memorable, and suitable for a digital music marketplace. Return as a JSON array of strings. For example: ["Vibez", "City Lights", "Lofi Dreams"]`, keywords)
}

func descriptionPrompt(title, keywords string, genre models.Genre) string {
	if keywords == "" {
		keywords = "unique sound"
	}
	genreName := string(genre)
	if genreName == "" {
		genreName = "Electronic"
	}
	return fmt.Sprintf(`Write a short, engaging promotional description (2-3 sentences, max 150 characters) for a digital music product titled %q.
Keywords: %q. Genre: %q.
Highlight its unique sound and potential uses for artists (e.g., vlogs, gaming, background music, independent films).
Example: "Immerse yourself in '%s', a %s track perfect for content creators. Its captivating melody and %s vibe will elevate your projects."`,
		title, keywords, genreName, title, genreName, keywords)
}

func productPrompt(keywords string) string {
	genreNames := make([]string, 0, len(models.AllGenres()))
	for _, g := range models.AllGenres() {
		genreNames = append(genreNames, string(g))
	}
	return fmt.Sprintf(`Generate details for a new music beat based on these keywords: %q.
I need a title, a short description (2 sentences), a suitable genre (from %s),
and 3 relevant tags.
Return the response as a JSON object with keys: "title", "description", "genre", "tags" (array of strings).
Example: {"title": "Cybernetic Pulse", "description": "A driving electronic beat with futuristic synths. Perfect for tech videos or sci-fi games.", "genre": "EDM", "tags": ["cyberpunk", "electronic", "future bass"]}`,
		keywords, strings.Join(genreNames, ", "))
}

// --- transport ---

type generateContentRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateContent performs one generateContent call and returns the first
// candidate's text.
func (s *GeminiService) generateContent(ctx context.Context, prompt string, expectJSON bool) (string, error) {
	payload := generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if expectJSON {
		payload.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.cfg.BaseURL, s.cfg.Model, url.QueryEscape(s.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response contained no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
