//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"salon-booking/cmd/bootstrap"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/durability"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

// OperatorPassword is the plain password behind the operator hash in the e2e config.
const OperatorPassword = "password123"

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// App is one running instance of the service wired the way main wires it.
type App struct {
	Router *gin.Engine
	Config config.Config
	Runner *durability.Runner
	fx     *fx.App

	stopOnce sync.Once
	stopErr  error
}

// Stop runs the shutdown hooks, including the final snapshot save. Later calls
// return the first result.
func (a *App) Stop(t *testing.T) {
	t.Helper()
	require.NoError(t, a.stop(), "failed to stop fx app")
}

func (a *App) stop() error {
	a.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.stopErr = a.fx.Stop(ctx)
	})
	return a.stopErr
}

// ------------------------------------------------------------
// Per-suite environment: one database, one running app
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, config.DBConfig, *App) {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	app := StartApp(t, dbConfig)

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return pool, dbConfig, app
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read PostgreSQL container address")

	return postgresInfo
}

// ------------------------------------------------------------
// Database per suite
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Europe/Moscow",
		MaxConns: 4,
	}

	pool, cleanup, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "database connection failed")
	require.NotNil(t, pool, "database pool is nil")

	t.Cleanup(func() {
		cleanup()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return pool, dbConfig
}

// ------------------------------------------------------------
// App construction
// ------------------------------------------------------------

// StartApp builds and starts the production module graph against dbConfig. Two
// apps started one after the other on the same database model a restart.
func StartApp(t *testing.T, dbConfig config.DBConfig) *App {
	t.Helper()

	cfg := createTestConfig(t, dbConfig)
	app := &App{}

	fxApp := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.AppModule,

		fx.Populate(&app.Router, &app.Config, &app.Runner),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, fxApp.Start(ctx), "failed to start fx app")
	require.NotNil(t, app.Router, "router was not built")

	app.fx = fxApp
	t.Cleanup(func() {
		if err := app.stop(); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return app
}

func createTestConfig(t *testing.T, dbConfig config.DBConfig) config.Config {
	t.Helper()

	hash, err := password.HashPassword(OperatorPassword)
	require.NoError(t, err)

	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Persistence.Driver = config.PersistenceDriverPostgres
	testConfig.Operator.PasswordHash = hash
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// PostgreSQL container, started once per test process
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=100",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start PostgreSQL container")
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	DB       *pgxpool.Pool
	DBConfig config.DBConfig
	App      *App
	Router   *gin.Engine
	Config   config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	pool, dbConfig, app := setupE2EEnvironment(t)
	s.DB = pool
	s.DBConfig = dbConfig
	s.App = app
	s.Router = app.Router
	s.Config = app.Config
	require.NotNil(t, s.DB, "database setup failed")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}
