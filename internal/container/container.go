package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/task-management-api/config"
	"github.com/oksasatya/task-management-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/task-management-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoClient *mongodb.Client
	jwtManager  *helpers.JWTManager
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetMongo(c *mongodb.Client)   { mongoClient = c }
func GetMongo() *mongodb.Client    { return mongoClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }
