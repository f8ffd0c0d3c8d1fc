package gamestate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hollyberry/giftswap/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository with a short lock wait to keep tests fast
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		LockWait:    200 * time.Millisecond,
		LockPoll:    5 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testState() *models.GameState {
	target := "p2"
	return &models.GameState{
		ID:     "test-game-id",
		Status: models.GameStatusActive,
		Mode:   models.GameModeAuto,
		Participants: []*models.Participant{
			{
				ID:             "p1",
				Name:           "Alice",
				NormalizedName: "alice",
				AvatarID:       "santa-classic",
				AssignedToID:   &target,
				CreatedAt:      s.testNow,
			},
			{
				ID:             "p2",
				Name:           "Bob",
				NormalizedName: "bob",
				AvatarID:       "elf-happy",
				CreatedAt:      s.testNow,
			},
		},
		CreatedAt: s.testNow,
		StartedAt: &s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetState() {
	state := s.testState()

	err := s.repo.SaveState(context.Background(), &SaveStateInput{State: state})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetState(context.Background(), &GetStateInput{})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-game-id", retrieved.ID)
	s.Equal(models.GameStatusActive, retrieved.Status)
	s.Equal(models.GameModeAuto, retrieved.Mode)
	s.Require().Len(retrieved.Participants, 2)
	s.Equal("Alice", retrieved.Participants[0].Name)
	s.Require().NotNil(retrieved.Participants[0].AssignedToID)
	s.Equal("p2", *retrieved.Participants[0].AssignedToID)
	s.Nil(retrieved.Participants[1].AssignedToID)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetStateNotFound() {
	_, err := s.repo.GetState(context.Background(), &GetStateInput{})
	s.ErrorIs(err, ErrStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveStateReplaces() {
	first := s.testState()
	err := s.repo.SaveState(context.Background(), &SaveStateInput{State: first})
	s.Require().NoError(err)

	second := s.testState()
	second.ID = "next-game-id"
	second.Participants = nil
	err = s.repo.SaveState(context.Background(), &SaveStateInput{State: second})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetState(context.Background(), &GetStateInput{})
	s.Require().NoError(err)
	s.Equal("next-game-id", retrieved.ID)
	s.Empty(retrieved.Participants)
}

func (s *RedisRepositoryTestSuite) TestDeleteState() {
	err := s.repo.SaveState(context.Background(), &SaveStateInput{State: s.testState()})
	s.Require().NoError(err)

	err = s.repo.DeleteState(context.Background(), &DeleteStateInput{})
	s.Require().NoError(err)

	_, err = s.repo.GetState(context.Background(), &GetStateInput{})
	s.ErrorIs(err, ErrStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestWithLockRuns() {
	ran := false
	err := s.repo.WithLock(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	s.Require().NoError(err)
	s.True(ran)

	// Lock is released afterwards
	s.False(s.mr.Exists("santa:state:lock"))
}

func (s *RedisRepositoryTestSuite) TestWithLockSerializes() {
	const workers = 8

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.repo.WithLock(context.Background(), func(ctx context.Context) error {
				mu.Lock()
				inCritical++
				if inCritical > maxInCritical {
					maxInCritical = inCritical
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				inCritical--
				mu.Unlock()
				return nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(1, maxInCritical, "critical sections overlapped")
}

func (s *RedisRepositoryTestSuite) TestWithLockTimeout() {
	// Simulate another holder
	s.Require().NoError(s.mr.Set("santa:state:lock", "someone-else"))

	err := s.repo.WithLock(context.Background(), func(ctx context.Context) error {
		s.Fail("critical section ran while the lock was held elsewhere")
		return nil
	})
	s.ErrorIs(err, ErrLockTimeout)

	// The foreign lock was not touched
	got, err2 := s.mr.Get("santa:state:lock")
	s.Require().NoError(err2)
	s.Equal("someone-else", got)
}

func (s *RedisRepositoryTestSuite) TestWithLockReleasesOnError() {
	wantErr := errors.New("boom")

	err := s.repo.WithLock(context.Background(), func(ctx context.Context) error {
		return wantErr
	})
	s.ErrorIs(err, wantErr)

	// A follow-up acquisition succeeds immediately
	err = s.repo.WithLock(context.Background(), func(ctx context.Context) error {
		return nil
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestWithLockKeepsTakenOverLock() {
	err := s.repo.WithLock(context.Background(), func(ctx context.Context) error {
		// The TTL expires mid-section and another caller acquires the lock
		s.mr.Del("santa:state:lock")
		s.Require().NoError(s.mr.Set("santa:state:lock", "new-holder"))
		return nil
	})
	s.Require().NoError(err)

	// Release must leave the new holder's lock in place
	got, err := s.mr.Get("santa:state:lock")
	s.Require().NoError(err)
	s.Equal("new-holder", got)
}

func (s *RedisRepositoryTestSuite) TestWithLockHonorsContext() {
	s.Require().NoError(s.mr.Set("santa:state:lock", "someone-else"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.repo.WithLock(ctx, func(ctx context.Context) error {
		return nil
	})
	s.ErrorIs(err, context.Canceled)
}
