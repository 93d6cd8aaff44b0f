package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/core/ports/portstest"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormProviderIntegrationTestSuite runs the provider behaviour suite against
// a PostgreSQL container.
type GormProviderIntegrationTestSuite struct {
	portstest.ProviderSuite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *GormProviderIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.NewGormProvider(db).Migrate(ctx))

	suite.NewProvider = func() ports.Provider {
		err := suite.db.Exec("TRUNCATE TABLE line_items, fulfillments, products RESTART IDENTITY").Error
		suite.Require().NoError(err)
		return postgresadapter.NewGormProvider(suite.db)
	}
}

func (suite *GormProviderIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GormProviderIntegrationTestSuite) TestMigrate_CreatesTables() {
	for _, table := range []string{"fulfillments", "line_items", "products"} {
		suite.True(suite.db.Migrator().HasTable(table), table)
	}
}

func TestGormProviderIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormProviderIntegrationTestSuite))
}
