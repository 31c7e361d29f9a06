//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"friendlylink/pkg/platform/sentinel"
	"friendlylink/pkg/testutil/containers"
)

type PostgresStorageSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *Postgres
}

func TestPostgresStorageSuite(t *testing.T) {
	suite.Run(t, new(PostgresStorageSuite))
}

func (s *PostgresStorageSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	var err error
	s.store, err = NewPostgres(context.Background(), s.pg.DB)
	s.Require().NoError(err)
}

func (s *PostgresStorageSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateState(context.Background()))
}

func (s *PostgresStorageSuite) TestEmptyTableIsNoData() {
	_, err := s.store.Read(context.Background())
	s.ErrorIs(err, sentinel.ErrNoData)
}

func (s *PostgresStorageSuite) TestRoundTrip() {
	ctx := context.Background()
	registry := sampleRegistry(s.T())
	s.Require().NoError(s.store.Write(ctx, registry))
	s.Require().NoError(s.store.Write(ctx, registry))

	got, err := s.store.Read(ctx)
	s.Require().NoError(err)
	assertSameRegistry(s.T(), registry, got)
}

type RedisStorageSuite struct {
	suite.Suite
	rc    *containers.RedisContainer
	store *Redis
}

func TestRedisStorageSuite(t *testing.T) {
	suite.Run(t, new(RedisStorageSuite))
}

func (s *RedisStorageSuite) SetupSuite() {
	s.rc = containers.GetManager().GetRedis(s.T())
	s.store = NewRedis(s.rc.Client, "friendlylink:test")
}

func (s *RedisStorageSuite) SetupTest() {
	s.Require().NoError(s.rc.FlushAll(context.Background()))
}

func (s *RedisStorageSuite) TestMissingKeyIsNoData() {
	_, err := s.store.Read(context.Background())
	s.ErrorIs(err, sentinel.ErrNoData)
}

func (s *RedisStorageSuite) TestRoundTrip() {
	ctx := context.Background()
	registry := sampleRegistry(s.T())
	s.Require().NoError(s.store.Write(ctx, registry))

	got, err := s.store.Read(ctx)
	s.Require().NoError(err)
	assertSameRegistry(s.T(), registry, got)

	fields, err := s.rc.Client.HKeys(ctx, "friendlylink:test").Result()
	s.Require().NoError(err)
	s.ElementsMatch(Buckets, fields)
}

func (s *RedisStorageSuite) TestCorruptField() {
	ctx := context.Background()
	s.Require().NoError(s.rc.Client.HSet(ctx, "friendlylink:test", BucketPairs, "oops").Err())

	_, err := s.store.Read(ctx)
	s.ErrorIs(err, sentinel.ErrDataConversion)
}
