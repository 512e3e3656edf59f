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

	"nailbook/cmd/bootstrap"
	"nailbook/cmd/bootstrap/components"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var (
	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*mongo.Database, *gin.Engine, config.Config) {
	mongoInfo := startContainers(t)

	mongoConfig := buildMongoConfig(mongoInfo)

	db, router, cfg, app := buildE2EApp(mongoConfig)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	// Register cleanup for the fx app
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました",
		"mongo_host", mongoInfo.Host,
		"mongo_port", mongoInfo.Port.Port())

	return db, router, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	mongoInfo, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "MongoDBコンテナ情報の取得に失敗")

	return mongoInfo
}

// ------------------------------------------------------------
// データベース設定の組み立て
// ------------------------------------------------------------
func buildMongoConfig(mongoInfo ContainerInfo) config.MongoConfig {
	// プロセス毎に違うデータベース名を生成
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	return config.MongoConfig{
		URI:            fmt.Sprintf("mongodb://%s:%s", mongoInfo.Host, mongoInfo.Port.Port()),
		Database:       dbName,
		ConnectTimeout: 10 * time.Second,
		QueryTimeout:   5 * time.Second,
	}
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns db, router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(mongoConfig config.MongoConfig) (*mongo.Database, *gin.Engine, config.Config, *fx.App) {
	var db *mongo.Database
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(mongoConfig)
		}),
	)

	// 外部の決済プロバイダへは繋がず、スタブでSnapセッションを返す
	testPaymentModule := fx.Module("testpayment",
		fx.Provide(
			fx.Annotate(
				func() *stubPaymentGateway { return &stubPaymentGateway{} },
				fx.As(new(commands.PaymentGateway)),
			),
			bootstrap.NewNotificationVerifier,
		),
	)

	app := fx.New(
		testConfigModule,
		testPaymentModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MongoModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&db, &router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return db, router, cfg, app
}

func createTestConfig(mongoConfig config.MongoConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Mongo = mongoConfig
	return testConfig
}

// stubPaymentGateway issues a fixed Snap session so booking flows run
// without provider credentials.
type stubPaymentGateway struct{}

func (g *stubPaymentGateway) CreateSnapSession(_ context.Context, in commands.SnapSessionInput) (*commands.SnapSession, error) {
	return &commands.SnapSession{
		Token:       "e2e-snap-" + in.OrderID,
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v4/redirection/e2e-snap-" + in.OrderID,
	}, nil
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// MongoDBコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=512m", // MongoDBデータをRAMに載せてI/O削減
			},
			WaitingFor: wait.ForLog("Waiting for connections").
				WithStartupTimeout(60 * time.Second),
			Name:   "mongo-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mongoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "MongoDBコンテナの起動に失敗")

		// コンテナの手動クリーンアップを登録 (RYUK無効時用)
		t.Cleanup(func() {
			if mongoTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := mongoTestContainer.Terminate(ctx); err != nil {
					slog.Warn("MongoDBコンテナの終了に失敗しました", "error", err.Error())
				}
			}
		})
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
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
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *mongo.Database // 各テストで使う DB 接続
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	db, router, cfg := setupE2EEnvironment(t)
	s.DB = db
	s.Router = router
	s.Config = cfg
	require.NotNil(t, db, "DBのセットアップに失敗")
	require.NotEmpty(t, s.Config.Mongo.URI, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// コレクションを空にしてテスト間の独立性を保つ
	err := resetCollections(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}

func resetCollections(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{
		mongodb.CollProducts,
		mongodb.CollBookings,
		mongodb.CollPayments,
		mongodb.CollAccounts,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
