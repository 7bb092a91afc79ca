package container

import (
	gcs "cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/config"
	"github.com/croshet/storefront-api/internal/infrastructure/storage"
	"github.com/croshet/storefront-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *gcs.Client
	jwtManager  *helpers.JWTManager
	avatarStore storage.AvatarStore
	rabbitPub   *helpers.RabbitPublisher
	esClient    *elasticsearch.Client
)

func SetConfig(c *config.Config)                 { cfg = c }
func GetConfig() *config.Config                  { return cfg }
func SetLogger(l *logrus.Logger)                 { logger = l }
func GetLogger() *logrus.Logger                  { return logger }
func SetPGPool(p *pgxpool.Pool)                  { pgPool = p }
func GetPGPool() *pgxpool.Pool                   { return pgPool }
func SetRedis(r *redis.Client)                   { redisClient = r }
func GetRedis() *redis.Client                    { return redisClient }
func SetGCS(s *gcs.Client)                       { gcsClient = s }
func GetGCS() *gcs.Client                        { return gcsClient }
func SetJWT(m *helpers.JWTManager)               { jwtManager = m }
func GetJWT() *helpers.JWTManager                { return jwtManager }
func SetAvatarStore(s storage.AvatarStore)       { avatarStore = s }
func GetAvatarStore() storage.AvatarStore        { return avatarStore }
func SetRabbitPub(p *helpers.RabbitPublisher)    { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher     { return rabbitPub }
func SetES(c *elasticsearch.Client)              { esClient = c }
func GetES() *elasticsearch.Client               { return esClient }
