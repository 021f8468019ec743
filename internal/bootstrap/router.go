package bootstrap

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iitm-tech-society/recruit-backend/config"
	httpapi "github.com/iitm-tech-society/recruit-backend/internal/api/http"
	"github.com/iitm-tech-society/recruit-backend/internal/auth"
	"github.com/iitm-tech-society/recruit-backend/internal/middleware"
	recruithttp "github.com/iitm-tech-society/recruit-backend/internal/recruit/http"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/repository"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/validate"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	AuthClient  *fbauth.Client
	Limiter     middleware.Limiter
	Config      *config.Config
}

const maxBodyBytes = 1 << 20

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(corsConfig(dep.Config.Server.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	repo := repository.New(dep.DB)
	rules := validate.NewRules(dep.Config.Submission.ExperienceMinChars)
	handler := recruithttp.NewHandler(repo, rules, dep.Config.Submission.Policy)

	api := r.Group("/api")

	recruitGroup := api.Group("/recruit")
	recruitGroup.Use(
		middleware.RequestID(),
		bodyLimit(maxBodyBytes),
		middleware.GlobalThrottle(dep.Config.RateLimit.GlobalRPS),
		middleware.RateLimit(dep.Limiter, dep.Config.RateLimit.Limit, dep.Config.RateLimit.Window),
		auth.RequireUser(dep.AuthClient),
	)
	handler.Register(recruitGroup)

	// Admin reads stay dark unless a key is configured.
	if dep.Config.Auth.AdminAPIKey != "" {
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.RequestID(), middleware.APIKey(dep.Config.Auth.AdminAPIKey))
		handler.RegisterAdmin(adminGroup)
	}

	return r
}

func corsConfig(origins string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-API-Key", "X-Request-Id")
	return cors.New(cfg)
}

func bodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
