package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mediafeed/internal/domain"
	"mediafeed/internal/service/mocks"
)

type ShuffleServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	subscriptions *mocks.MockSubscriptionStore
	videos        *mocks.MockVideoStore

	service *ShuffleService
}

func (s *ShuffleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.subscriptions = mocks.NewMockSubscriptionStore(s.ctrl)
	s.videos = mocks.NewMockVideoStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewShuffleService(s.subscriptions, s.videos, logger)

	// Keep the subscription order stable so round-robin picks are
	// predictable.
	s.service.shuffle = func([]domain.Subscription) {}
}

func (s *ShuffleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestShuffleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShuffleServiceTestSuite))
}

func video(id int64, durationSecs int64) *domain.Video {
	return &domain.Video{ID: id, Duration: &durationSecs}
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_RespectsBudget() {
	ctx := context.Background()

	subs := []domain.Subscription{{ID: 1}, {ID: 2}}
	s.subscriptions.EXPECT().ListByUser(ctx, int64(7)).Return(subs, nil)

	// A full hour puts no duration cap on the seed pick.
	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{1, 2}, nil).Return(video(10, 1800), nil)

	// Round 1: sub 1 contributes a 20-minute video; sub 2's only pick is
	// 2000s, over the 600s left.
	s.videos.EXPECT().FirstUnwatched(ctx, int64(1), []int64{10}).Return(video(11, 1200), nil)
	s.videos.EXPECT().FirstUnwatched(ctx, int64(2), []int64{10, 11}).Return(video(20, 2000), nil).Times(4)

	// Rounds 2-4: sub 1 is exhausted; nothing fits from sub 2, so three
	// idle rounds end the build.
	s.videos.EXPECT().FirstUnwatched(ctx, int64(1), []int64{10, 11}).Return(nil, domain.ErrNotFound).Times(3)

	queue, err := s.service.BuildQueue(ctx, 7, ShuffleScope{}, time.Hour)

	s.Require().NoError(err)
	s.Equal([]int64{10, 11}, queue)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_ShortBudgetCapsSeed() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListByUser(ctx, int64(7)).Return([]domain.Subscription{{ID: 1}}, nil)

	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{1}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []int64, maxDuration *int64) (*domain.Video, error) {
			s.Require().NotNil(maxDuration)
			s.Equal(int64(1800), *maxDuration)
			return video(10, 900), nil
		},
	)
	s.videos.EXPECT().FirstUnwatched(ctx, int64(1), []int64{10}).Return(nil, domain.ErrNotFound).Times(3)

	queue, err := s.service.BuildQueue(ctx, 7, ShuffleScope{}, 30*time.Minute)

	s.Require().NoError(err)
	s.Equal([]int64{10}, queue)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_ZeroBudgetDefaultsToHour() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListByUser(ctx, int64(7)).Return([]domain.Subscription{{ID: 1}}, nil)

	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{1}, nil).Return(video(10, 3600), nil)
	s.videos.EXPECT().FirstUnwatched(ctx, int64(1), []int64{10}).Return(nil, domain.ErrNotFound).Times(3)

	queue, err := s.service.BuildQueue(ctx, 7, ShuffleScope{}, 0)

	s.Require().NoError(err)
	s.Equal([]int64{10}, queue)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_UnknownDurationAlwaysFits() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListByUser(ctx, int64(7)).Return([]domain.Subscription{{ID: 1}}, nil)

	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{1}, nil).Return(video(10, 3500), nil)

	// 100s of budget left, but a video without a known duration is
	// admitted regardless.
	s.videos.EXPECT().FirstUnwatched(ctx, int64(1), []int64{10}).Return(&domain.Video{ID: 11}, nil)
	s.videos.EXPECT().FirstUnwatched(ctx, int64(1), []int64{10, 11}).Return(nil, domain.ErrNotFound).Times(3)

	queue, err := s.service.BuildQueue(ctx, 7, ShuffleScope{}, time.Hour)

	s.Require().NoError(err)
	s.Equal([]int64{10, 11}, queue)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_SubscriptionScope() {
	ctx := context.Background()
	subID := int64(3)

	s.subscriptions.EXPECT().GetOwnedByID(ctx, subID, int64(7)).Return(&domain.Subscription{ID: 3}, nil)

	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{3}, nil).Return(video(30, 600), nil)
	s.videos.EXPECT().FirstUnwatched(ctx, int64(3), []int64{30}).Return(nil, domain.ErrNotFound).Times(3)

	queue, err := s.service.BuildQueue(ctx, 7, ShuffleScope{SubscriptionID: &subID}, time.Hour)

	s.Require().NoError(err)
	s.Equal([]int64{30}, queue)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_FolderScope() {
	ctx := context.Background()
	folderID := int64(9)

	s.subscriptions.EXPECT().ListByFolder(ctx, folderID, int64(7)).Return([]domain.Subscription{{ID: 4}}, nil)

	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{4}, nil).Return(video(40, 600), nil)
	s.videos.EXPECT().FirstUnwatched(ctx, int64(4), []int64{40}).Return(nil, domain.ErrNotFound).Times(3)

	queue, err := s.service.BuildQueue(ctx, 7, ShuffleScope{FolderID: &folderID}, time.Hour)

	s.Require().NoError(err)
	s.Equal([]int64{40}, queue)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_NoSubscriptions() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListByUser(ctx, int64(7)).Return(nil, nil)

	_, err := s.service.BuildQueue(ctx, 7, ShuffleScope{}, time.Hour)

	s.ErrorIs(err, domain.ErrNoCandidate)
}

func (s *ShuffleServiceTestSuite) TestBuildQueue_NoSeedCandidate() {
	ctx := context.Background()

	s.subscriptions.EXPECT().ListByUser(ctx, int64(7)).Return([]domain.Subscription{{ID: 1}}, nil)
	s.videos.EXPECT().EarliestUnwatched(ctx, []int64{1}, nil).Return(nil, domain.ErrNotFound)

	_, err := s.service.BuildQueue(ctx, 7, ShuffleScope{}, time.Hour)

	s.ErrorIs(err, domain.ErrNoCandidate)
}
