// Package insights builds the SIF synthesis: public reviews fetched from the
// search API are summarised by the completion gateway into strengths,
// weaknesses, suggestions and per-category scores.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KwnLnrd/Gallopin/internal/llm"
	"github.com/KwnLnrd/Gallopin/internal/places"

	"go.uber.org/zap"
)

const (
	StatusSuccess   = "success"
	StatusError     = "error"
	FallbackMessage = "L'analyse des avis en ligne est momentanément indisponible."

	maxReviews = 40
)

var errNoReviews = errors.New("no reviews to analyse")

type Synthesis struct {
	Status         string             `json:"status"`
	Message        string             `json:"message,omitempty"`
	ReviewCount    int                `json:"review_count"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Suggestions    []string           `json:"suggestions"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// Fallback is returned whenever the chain fails.
func Fallback() Synthesis {
	return Synthesis{
		Status:         StatusError,
		Message:        FallbackMessage,
		Strengths:      []string{},
		Weaknesses:     []string{},
		Suggestions:    []string{},
		CategoryScores: map[string]float64{},
	}
}

type ReviewSource interface {
	Configured() bool
	Reviews(ctx context.Context) ([]places.Review, error)
}

type Service struct {
	source ReviewSource
	llm    llm.Client
	log    *zap.Logger
}

// NewService accepts a nil completion client; Synthesize then always falls
// back.
func NewService(source ReviewSource, client llm.Client, log *zap.Logger) *Service {
	return &Service{source: source, llm: client, log: log}
}

func (s *Service) Synthesize(ctx context.Context) Synthesis {
	out, err := s.synthesize(ctx)
	if err != nil {
		s.log.Warn("sif synthesis failed", zap.Error(err))
		return Fallback()
	}
	return out
}

func (s *Service) synthesize(ctx context.Context) (Synthesis, error) {
	if s.source == nil || !s.source.Configured() {
		return Synthesis{}, places.ErrNotConfigured
	}
	if s.llm == nil {
		return Synthesis{}, errors.New("no completion client configured")
	}

	reviews, err := s.source.Reviews(ctx)
	if err != nil {
		return Synthesis{}, fmt.Errorf("fetch reviews: %w", err)
	}
	if len(reviews) == 0 {
		return Synthesis{}, errNoReviews
	}
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}

	raw, err := llm.CompleteJSON(ctx, s.llm, llm.Request{
		System:    systemPrompt,
		Prompt:    buildPrompt(reviews),
		MaxTokens: 1200,
	})
	if err != nil {
		return Synthesis{}, fmt.Errorf("complete: %w", err)
	}

	var parsed struct {
		Strengths      []string           `json:"strengths"`
		Weaknesses     []string           `json:"weaknesses"`
		Suggestions    []string           `json:"suggestions"`
		CategoryScores map[string]float64 `json:"category_scores"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Synthesis{}, fmt.Errorf("decode synthesis: %w", err)
	}
	if len(parsed.Strengths) == 0 && len(parsed.Weaknesses) == 0 && len(parsed.Suggestions) == 0 {
		return Synthesis{}, errors.New("synthesis is empty")
	}

	out := Fallback()
	out.Status = StatusSuccess
	out.Message = ""
	out.ReviewCount = len(reviews)
	out.Strengths = append(out.Strengths, parsed.Strengths...)
	out.Weaknesses = append(out.Weaknesses, parsed.Weaknesses...)
	out.Suggestions = append(out.Suggestions, parsed.Suggestions...)
	for k, v := range parsed.CategoryScores {
		out.CategoryScores[k] = v
	}
	return out, nil
}

const systemPrompt = "Tu es un analyste de la satisfaction client pour Gallopin, brasserie parisienne fondée en 1876. " +
	"Tu résumes des avis en ligne de façon factuelle et tu réponds uniquement en JSON."

func buildPrompt(reviews []places.Review) string {
	var b strings.Builder
	b.WriteString("Analyse les avis clients suivants et réponds avec un objet JSON de la forme :\n")
	b.WriteString(`{"strengths": [string], "weaknesses": [string], "suggestions": [string], ` +
		`"category_scores": {"cuisine": number, "service": number, "ambiance": number, "rapport_qualite_prix": number}}`)
	b.WriteString("\nLes scores vont de 0 à 10. Trois éléments maximum par liste, en français.\n\nAvis :\n")

	for i, r := range reviews {
		fmt.Fprintf(&b, "%d. (%g/5) %s\n", i+1, r.Rating, r.Snippet)
	}
	return b.String()
}
