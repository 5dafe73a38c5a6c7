package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Handles groups the two persistence clients. They are opened once at
// process start and injected into the repositories that use them.
type Handles struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

func Connect() (*Handles, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	rdb, err := redisConnection()
	if err != nil {
		return nil, err
	}

	return &Handles{DB: gormDB, Rdb: rdb}, nil
}

func redisConnection() (*redis.Client, error) {
	ctx := context.Background()
	useTLS := os.Getenv("REDIS_TLS") == "true"

	var tlsConfig *tls.Config
	if useTLS {
		tlsConfig = &tls.Config{}
	}
	dbNum, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		dbNum = 0
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:      os.Getenv("REDIS_ADDR"),
		Username:  os.Getenv("REDIS_USERNAME"),
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        dbNum,
		TLSConfig: tlsConfig,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return rdb, nil
}

func (h *Handles) Close() error {
	if err := h.Rdb.Close(); err != nil {
		return err
	}
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
