package httpserver

import (
	"database/sql"
	"errors"

	"shadergen-srv/config"
	"shadergen-srv/pkg/discord"
	"shadergen-srv/pkg/gemini"
	"shadergen-srv/pkg/log"
	pkgRedis "shadergen-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// LLM Configuration
	gemini gemini.IGemini

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// LLM Configuration
	Gemini gemini.IGemini

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// ConfigFromApp builds a server Config from the application config.
func ConfigFromApp(cfg *config.Config) Config {
	return Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
	}
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// LLM Configuration
		gemini: cfg.Gemini,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// LLM Configuration
	if srv.gemini == nil {
		return errors.New("gemini client is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Redis and Discord are optional: without Redis the library runs
	// uncached, without Discord no error notifications are sent.

	return nil
}
