package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/repo"
	"github.com/Egor213/PgDash/internal/repo/repoerrs"
	"github.com/Egor213/PgDash/internal/threshold"
	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type PreferenceService struct {
	prefRepo         repo.Preference
	defaultThreshold string
}

func NewPreferenceService(pr repo.Preference, defaultThreshold string) *PreferenceService {
	if defaultThreshold == "" {
		defaultThreshold = threshold.DefaultThreshold
	}
	return &PreferenceService{
		prefRepo:         pr,
		defaultThreshold: defaultThreshold,
	}
}

// Threshold returns the stored long running query threshold or the configured default.
func (s *PreferenceService) Threshold(ctx context.Context) (string, error) {
	value, err := s.prefRepo.Get(ctx, domain.PrefLongRunningQueryThreshold)
	if errors.Is(err, repoerrs.ErrNotFound) {
		return s.defaultThreshold, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return value, nil
}

func (s *PreferenceService) SetThreshold(ctx context.Context, raw string) (string, error) {
	cfg, err := threshold.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidThreshold, err)
	}

	value := threshold.Format(cfg)
	if err := s.prefRepo.Set(ctx, domain.PrefLongRunningQueryThreshold, value); err != nil {
		return "", errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", ErrQueryFailed, err))
	}

	log.WithField("value", value).Info("Long running query threshold updated")
	return value, nil
}

// ThresholdConfig parses the current threshold. A stored value that is not
// numeric is an error, not a silent default.
func (s *PreferenceService) ThresholdConfig(ctx context.Context) (domain.ThresholdConfig, error) {
	raw, err := s.Threshold(ctx)
	if err != nil {
		return domain.ThresholdConfig{}, err
	}

	cfg, err := threshold.Parse(raw)
	if err != nil {
		return domain.ThresholdConfig{}, fmt.Errorf("%w: %v", ErrInvalidThreshold, err)
	}
	return cfg, nil
}
