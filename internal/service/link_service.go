package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-shortener/internal/generator"
	"github.com/MikhailRaia/link-shortener/internal/metrics"
	"github.com/MikhailRaia/link-shortener/internal/model"
	"github.com/MikhailRaia/link-shortener/internal/storage"
	"github.com/MikhailRaia/link-shortener/internal/validator"
)

// MaxGenerateAttempts bounds how many random codes are tried before giving up.
const MaxGenerateAttempts = 5

var (
	ErrURLRequired      = validator.ErrEmptyURL
	ErrInvalidURL       = validator.ErrInvalidURL
	ErrInvalidShortCode = validator.ErrInvalidShortCode
	ErrShortCodeExists  = errors.New("short code already exists")
	ErrCodeGeneration   = errors.New("could not generate a free short code")
)

// CodeGenerator produces candidate short codes.
type CodeGenerator func() (string, error)

func defaultGenerator() (string, error) {
	return generator.GenerateCode(generator.CodeBytes)
}

// LinkService provides business logic for creating and resolving short links.
// Every load/modify/save sequence against the store runs under one lock.
type LinkService struct {
	store    storage.LinkStore
	generate CodeGenerator
	mu       sync.RWMutex
}

// Option customises a LinkService.
type Option func(*LinkService)

// WithCodeGenerator replaces the random code source.
func WithCodeGenerator(gen CodeGenerator) Option {
	return func(s *LinkService) {
		s.generate = gen
	}
}

// NewLinkService constructs a LinkService over the given store.
func NewLinkService(store storage.LinkStore, opts ...Option) *LinkService {
	s := &LinkService{
		store:    store,
		generate: defaultGenerator,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Shorten stores targetURL under customCode, or under a generated code when customCode is empty,
// and returns the code that was assigned.
func (s *LinkService) Shorten(ctx context.Context, targetURL, customCode string) (string, error) {
	if err := validator.ValidateURL(targetURL); err != nil {
		return "", err
	}

	code := ""
	if customCode != "" {
		code = validator.NormalizeShortCode(customCode)
		if err := validator.ValidateShortCode(code); err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading links: %w", err)
	}
	if links == nil {
		links = make(model.LinkMapping)
	}

	if code != "" {
		if _, exists := links[code]; exists {
			return "", ErrShortCodeExists
		}
	} else {
		code, err = s.freeCode(links)
		if err != nil {
			return "", err
		}
	}

	links[code] = targetURL

	if err := s.store.Save(ctx, links); err != nil {
		return "", fmt.Errorf("error saving links: %w", err)
	}

	metrics.RecordLinkCreated()
	log.Debug().Str("code", code).Str("url", targetURL).Msg("Link created")

	return code, nil
}

func (s *LinkService) freeCode(links model.LinkMapping) (string, error) {
	for attempt := 1; attempt <= MaxGenerateAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}

		if _, taken := links[code]; !taken && validator.ValidateShortCode(code) == nil {
			return code, nil
		}

		metrics.RecordCodeCollision()
		log.Warn().Str("code", code).Int("attempt", attempt).Msg("Generated short code collides, retrying")
	}

	return "", ErrCodeGeneration
}

// Resolve looks up the target URL for code.
func (s *LinkService) Resolve(ctx context.Context, code string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links, err := s.store.Load(ctx)
	if err != nil {
		return "", false, fmt.Errorf("error loading links: %w", err)
	}

	target, found := links[code]
	if found {
		metrics.RecordRedirect()
	} else {
		metrics.RecordRedirectMiss()
	}

	return target, found, nil
}

// Links returns a snapshot of the whole mapping.
func (s *LinkService) Links(ctx context.Context) (model.LinkMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading links: %w", err)
	}

	return links.Clone(), nil
}
