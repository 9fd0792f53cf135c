package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/homanp/ohh/logging"
)

var environmentLogger = logging.GetZeroLogger("util::environment", nil)

type handServerEnvironment struct {
	PersistMethod     string
	HandDataDir       string
	HandCacheSize     string
	RedisHost         string
	RedisPort         string
	RedisPW           string
	RedisDB           string
	PostgresHost      string
	PostgresPort      string
	PostgresDB        string
	PostgresUser      string
	PostgresPW        string
	NatsURL           string
	EnableHandPublish string
	Port              string
	LogLevel          string
}

// Env is a helper object for accessing environment variables.
var Env = &handServerEnvironment{
	PersistMethod:     "PERSIST_METHOD",
	HandDataDir:       "HAND_DATA_DIR",
	HandCacheSize:     "HAND_CACHE_SIZE",
	RedisHost:         "REDIS_HOST",
	RedisPort:         "REDIS_PORT",
	RedisPW:           "REDIS_PW",
	RedisDB:           "REDIS_DB",
	PostgresHost:      "POSTGRES_HOST",
	PostgresPort:      "POSTGRES_PORT",
	PostgresDB:        "POSTGRES_DB",
	PostgresUser:      "POSTGRES_USER",
	PostgresPW:        "POSTGRES_PASSWORD",
	NatsURL:           "NATS_URL",
	EnableHandPublish: "ENABLE_HAND_PUBLISH",
	Port:              "PORT",
	LogLevel:          "LOG_LEVEL",
}

func (e *handServerEnvironment) GetPersistMethod() string {
	method := os.Getenv(e.PersistMethod)
	if method == "" {
		return "memory"
	}
	return method
}

func (e *handServerEnvironment) GetHandDataDir() string {
	dir := os.Getenv(e.HandDataDir)
	if dir == "" {
		return "hand_data"
	}
	return dir
}

// GetHandCacheSize returns the size of the LRU cache placed in front of the
// external hand stores. A size of 0 disables the cache.
func (e *handServerEnvironment) GetHandCacheSize() int {
	sizeStr := os.Getenv(e.HandCacheSize)
	if sizeStr == "" {
		return 128
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid hand cache size %s", sizeStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return size
}

func (e *handServerEnvironment) GetRedisHost() string {
	host := os.Getenv(e.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", e.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (e *handServerEnvironment) GetRedisPort() int {
	portStr := os.Getenv(e.RedisPort)
	if portStr == "" {
		msg := fmt.Sprintf("%s is not defined", e.RedisPort)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (e *handServerEnvironment) GetRedisPW() string {
	return os.Getenv(e.RedisPW)
}

func (e *handServerEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(e.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (e *handServerEnvironment) GetPostgresConnStr() string {
	host := os.Getenv(e.PostgresHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", e.PostgresHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	port := os.Getenv(e.PostgresPort)
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, os.Getenv(e.PostgresUser), os.Getenv(e.PostgresPW), os.Getenv(e.PostgresDB))
}

func (e *handServerEnvironment) GetNatsURL() string {
	url := os.Getenv(e.NatsURL)
	if url == "" {
		return "nats://localhost:4222"
	}
	return url
}

func (e *handServerEnvironment) ShouldPublishHands() bool {
	v := os.Getenv(e.EnableHandPublish)
	return v == "1" || v == "true"
}

func (e *handServerEnvironment) GetPort() int {
	portStr := os.Getenv(e.Port)
	if portStr == "" {
		return 8080
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (e *handServerEnvironment) GetZeroLogLogLevel() zerolog.Level {
	levelStr := os.Getenv(e.LogLevel)
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	default:
		environmentLogger.Warn().Msgf("Unknown log level %s. Defaulting to info", levelStr)
		return zerolog.InfoLevel
	}
}
