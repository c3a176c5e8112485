package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/config"
	"github.com/oksasatya/digitalhub/internal/application"
)

// app-level container to share constructed components across packages
// Router modules are wired from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	store       *application.Store
)

func SetConfig(c *config.Config)    { cfg = c }
func GetConfig() *config.Config     { return cfg }
func SetLogger(l *logrus.Logger)    { logger = l }
func GetLogger() *logrus.Logger     { return logger }
func SetRedis(r *redis.Client)      { redisClient = r }
func GetRedis() *redis.Client       { return redisClient }
func SetStore(s *application.Store) { store = s }
func GetStore() *application.Store  { return store }
