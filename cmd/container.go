package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"plantel/pkg/fsx"
	"plantel/pkg/fsx/fsxs3"
	"plantel/pkg/iam/auth"
	"plantel/pkg/logx"
	"plantel/workforce/document/documentapi"
	"plantel/workforce/document/documentinfra"
	"plantel/workforce/document/documentsrv"
	"plantel/workforce/document/worker"
	"plantel/workforce/employee/employeeapi"
	"plantel/workforce/employee/employeeinfra"
	"plantel/workforce/employee/employeesrv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const reclassifyQueueName = "documents:reclassify"

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	TokenService    auth.TokenService
	EmployeeService *employeesrv.Service
	DocumentService *documentsrv.Service

	// Background processing
	ReclassifyWorker *worker.ReclassifyWorker

	// API Handlers
	EmployeeHandlers *employeeapi.EmployeeHandlers
	DocumentHandlers *documentapi.DocumentHandlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	employeeRepo := employeeinfra.NewPostgresEmployeeRepository(c.DB)
	documentRepo := documentinfra.NewPostgresDocumentRepository(c.DB)
	taskQueue := documentinfra.NewRedisTaskQueue(c.Redis, reclassifyQueueName)

	// --- Token Service ---
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.RefreshTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	// The document service implements document.Reclassifier, so the employee
	// service can trigger reclassification on roster changes.
	c.DocumentService = documentsrv.NewService(documentRepo, employeeRepo, c.FileSystem, taskQueue)
	c.EmployeeService = employeesrv.NewService(employeeRepo, c.DocumentService)

	// --- Background Worker ---
	workerCount := 4
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workerCount = n
		}
	}
	c.ReclassifyWorker = worker.NewReclassifyWorker(c.DocumentService, taskQueue, workerCount)

	// --- Handlers ---
	c.EmployeeHandlers = employeeapi.NewEmployeeHandlers(c.EmployeeService)
	c.DocumentHandlers = documentapi.NewDocumentHandlers(c.DocumentService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)
}
