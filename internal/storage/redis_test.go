package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	repo   Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.client)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	snap := testSnapshot(5)
	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectSet("citadels:snapshot:round3", string(data), 0).SetVal("OK")
	s.mock.ExpectSAdd("citadels:snapshots", "round3").SetVal(1)
	s.NoError(s.repo.Save(ctx, "round3.json", snap))

	s.mock.ExpectSet("citadels:snapshot:round3", string(data), 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.Save(ctx, "round3", snap))

	s.Error(s.repo.Save(ctx, "round3", nil))
}

func (s *RedisRepoTestSuite) TestLoad() {
	ctx := context.Background()
	snap := testSnapshot(9)
	data, err := json.Marshal(snap)
	s.Require().NoError(err)

	s.mock.ExpectGet("citadels:snapshot:slot").SetVal(string(data))
	got, err := s.repo.Load(ctx, "slot")
	s.Require().NoError(err)
	s.Equal(snap, got)

	s.mock.ExpectGet("citadels:snapshot:missing").RedisNil()
	_, err = s.repo.Load(ctx, "missing")
	s.ErrorIs(err, ErrNotFound)

	s.mock.ExpectGet("citadels:snapshot:slot").SetErr(errors.New("redis error"))
	_, err = s.repo.Load(ctx, "slot")
	s.Error(err)
	s.NotErrorIs(err, ErrNotFound)

	s.mock.ExpectGet("citadels:snapshot:bad").SetVal("{not json")
	_, err = s.repo.Load(ctx, "bad")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestList() {
	s.mock.ExpectSMembers("citadels:snapshots").SetVal([]string{"zeta", "alpha"})
	names, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"alpha", "zeta"}, names)
}
