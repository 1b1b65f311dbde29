package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
	"github.com/KwnLnrd/Gallopin/internal/llm"
	"github.com/KwnLnrd/Gallopin/internal/menu"
	"github.com/KwnLnrd/Gallopin/internal/staff"

	"go.uber.org/zap"
)

// ErrNothingToProcess is returned when a request has neither public content
// nor private feedback.
var ErrNothingToProcess = fmt.Errorf("%w: nothing to process", apperr.ErrInvalidInput)

type DishResolver interface {
	FindByText(ctx context.Context, text string) (*menu.FlavorOption, error)
}

type ServerResolver interface {
	FindByName(ctx context.Context, name string) (*staff.Server, error)
}

type Service struct {
	dishes   DishResolver
	servers  ServerResolver
	recorder Recorder
	llm      llm.Client
	log      *zap.Logger
}

func NewService(dishes DishResolver, servers ServerResolver, recorder Recorder, client llm.Client, log *zap.Logger) *Service {
	return &Service{
		dishes:   dishes,
		servers:  servers,
		recorder: recorder,
		llm:      client,
		log:      log,
	}
}

// Generate records the request and, when it carries public content, drafts a
// review. Rows are committed before the completion call, so a gateway
// failure keeps them.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return nil, fmt.Errorf("%w: rating out of range", apperr.ErrInvalidInput)
	}

	class, tags := Classify(req.Tags)
	private := strings.TrimSpace(req.PrivateFeedback)

	if !class.Public && private == "" {
		outcomes.WithLabelValues("rejected").Inc()
		return nil, ErrNothingToProcess
	}

	rec, err := s.buildRecord(ctx, class, private)
	if err != nil {
		return nil, err
	}

	if err := s.recorder.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("record review request: %w", err)
	}

	if !class.Public {
		outcomes.WithLabelValues("private").Inc()
		return &Result{Message: PrivateOnlyMessage}, nil
	}

	if s.llm == nil {
		return nil, fmt.Errorf("%w: no completion client configured", apperr.ErrUpstream)
	}

	system, prompt := BuildPrompt(PromptInput{
		Lang:        req.Lang,
		Tags:        tags,
		Rating:      req.Rating,
		CustomNotes: req.CustomNotes,
	})

	text, err := s.llm.Complete(ctx, llm.Request{System: system, Prompt: prompt})
	if err != nil {
		outcomes.WithLabelValues("upstream_error").Inc()
		return nil, fmt.Errorf("%w: draft review: %v", apperr.ErrUpstream, err)
	}

	outcomes.WithLabelValues("public").Inc()
	return &Result{Review: strings.TrimSpace(text)}, nil
}

func (s *Service) buildRecord(ctx context.Context, class Classification, private string) (Record, error) {
	rec := Record{Qualitative: class.Qualitative}

	for _, t := range class.Dishes {
		option, err := s.dishes.FindByText(ctx, t.Value)
		if errors.Is(err, apperr.ErrNotFound) {
			s.log.Debug("unknown dish tag dropped", zap.String("dish", t.Value))
			continue
		}
		if err != nil {
			return Record{}, err
		}
		rec.Dishes = append(rec.Dishes, DishSelection{Name: option.Text, Category: option.Category})
	}

	if private != "" {
		fb := &PrivateFeedback{Text: private}
		if class.ServerName != "" {
			server, err := s.servers.FindByName(ctx, class.ServerName)
			switch {
			case err == nil:
				fb.ServerID = &server.ID
			case !errors.Is(err, apperr.ErrNotFound):
				return Record{}, err
			}
		}
		rec.Feedback = fb
	}

	if class.Public && class.ServerName != "" {
		rec.GeneratedFor = class.ServerName
	}

	return rec, nil
}
