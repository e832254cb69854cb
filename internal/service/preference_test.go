package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Egor213/PgDash/internal/domain"
	repomocks "github.com/Egor213/PgDash/internal/mocks/repository"
	"github.com/Egor213/PgDash/internal/repo/repoerrs"
	"github.com/Egor213/PgDash/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPreferenceService_Threshold(t *testing.T) {
	type mockBehavior func(r *repomocks.MockPreference)

	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		want         string
		wantErr      error
	}{
		{
			name: "stored value",
			mockBehavior: func(r *repomocks.MockPreference) {
				r.EXPECT().Get(gomock.Any(), domain.PrefLongRunningQueryThreshold).Return("10|20", nil)
			},
			want: "10|20",
		},
		{
			name: "not stored falls back to default",
			mockBehavior: func(r *repomocks.MockPreference) {
				r.EXPECT().Get(gomock.Any(), domain.PrefLongRunningQueryThreshold).Return("", repoerrs.ErrNotFound)
			},
			want: "3|7",
		},
		{
			name: "repository error",
			mockBehavior: func(r *repomocks.MockPreference) {
				r.EXPECT().Get(gomock.Any(), domain.PrefLongRunningQueryThreshold).Return("", errors.New("db error"))
			},
			wantErr: service.ErrQueryFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repomocks.NewMockPreference(ctrl)
			tc.mockBehavior(mockRepo)

			s := service.NewPreferenceService(mockRepo, "3|7")
			got, err := s.Threshold(context.Background())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPreferenceService_SetThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockPreference(ctrl)
	s := service.NewPreferenceService(mockRepo, "")
	ctx := context.Background()

	t.Run("normalises and stores", func(t *testing.T) {
		mockRepo.EXPECT().Set(ctx, domain.PrefLongRunningQueryThreshold, "|5.5").Return(nil)

		got, err := s.SetThreshold(ctx, " |5.50")
		assert.NoError(t, err)
		assert.Equal(t, "|5.5", got)
	})

	t.Run("rejects non numeric", func(t *testing.T) {
		_, err := s.SetThreshold(ctx, "soon|later")
		assert.ErrorIs(t, err, service.ErrInvalidThreshold)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Set(ctx, domain.PrefLongRunningQueryThreshold, "1|2").Return(errors.New("db error"))

		_, err := s.SetThreshold(ctx, "1|2")
		assert.ErrorIs(t, err, service.ErrQueryFailed)
	})
}

func TestPreferenceService_ThresholdConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockPreference(ctrl)
	s := service.NewPreferenceService(mockRepo, "")

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", repoerrs.ErrNotFound)
	cfg, err := s.ThresholdConfig(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.ThresholdConfig{Warning: 2, Alert: 5}, cfg)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("|", nil)
	cfg, err = s.ThresholdConfig(context.Background())
	assert.NoError(t, err)
	assert.True(t, math.IsInf(cfg.Warning, 1))
	assert.True(t, math.IsInf(cfg.Alert, 1))

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("x|1", nil)
	_, err = s.ThresholdConfig(context.Background())
	assert.ErrorIs(t, err, service.ErrInvalidThreshold)
}
