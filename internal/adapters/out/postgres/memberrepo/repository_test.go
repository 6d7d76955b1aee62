package memberrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hankkuu/delivery-demo/internal/adapters/out/postgres/memberrepo"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ any, _ any) {}

type GormMemberRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *memberrepo.GormMemberRepository
}

func (suite *GormMemberRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&memberrepo.MemberDTO{}))

	suite.repo = memberrepo.NewGormMemberRepository(db, noopTracker{})
}

func (suite *GormMemberRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GormMemberRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE members RESTART IDENTITY CASCADE").Error)
}

func (suite *GormMemberRepositoryTestSuite) TestAdd_AssignsGeneratedID() {
	m, err := member.NewMember("rider01", "$2a$10$hash", "Kim")
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), m)

	suite.Require().NoError(err)
	suite.Positive(m.ID())
}

func (suite *GormMemberRepositoryTestSuite) TestAdd_DuplicateLoginID() {
	first, err := member.NewMember("rider01", "hash1", "Kim")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), first))

	second, err := member.NewMember("rider01", "hash2", "Lee")
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrDuplicateValue)
}

func (suite *GormMemberRepositoryTestSuite) TestGetByID_RoundTrip() {
	m, err := member.NewMember("rider01", "$2a$10$hash", "Kim")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), m))

	loaded, err := suite.repo.GetByID(context.Background(), m.ID())

	suite.Require().NoError(err)
	suite.Equal(m.ID(), loaded.ID())
	suite.Equal("rider01", loaded.LoginID())
}

func (suite *GormMemberRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(context.Background(), 424242)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormMemberRepositoryTestSuite) TestGetByLoginID_RoundTrip() {
	m, err := member.NewMember("rider01", "$2a$10$hash", "Kim")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), m))

	loaded, err := suite.repo.GetByLoginID(context.Background(), "rider01")

	suite.Require().NoError(err)
	suite.Equal(m.ID(), loaded.ID())
	suite.Equal("rider01", loaded.LoginID())
	suite.Equal("$2a$10$hash", loaded.PasswordHash())
	suite.Equal("Kim", loaded.Name())
}

func (suite *GormMemberRepositoryTestSuite) TestGetByLoginID_NotFound() {
	_, err := suite.repo.GetByLoginID(context.Background(), "nobody")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGormMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormMemberRepositoryTestSuite))
}
