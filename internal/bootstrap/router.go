package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/GoSim-25-26J-441/registry-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/registry-backend/internal/api/http/middleware"
	registryhttp "github.com/GoSim-25-26J-441/registry-backend/internal/registry/http"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool

	Institutions service.InstitutionStore
	Projects     service.ProjectStore
	Users        service.UserStore
	Clock        service.Clock

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if len(dep.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("")
	if dep.RateLimitRPS > 0 {
		api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	h := registryhttp.New(
		service.NewInstitutionService(dep.Institutions, dep.Projects, dep.Users, dep.Clock),
		service.NewProjectService(dep.Projects, dep.Clock),
		service.NewUserService(dep.Users, dep.Projects, dep.Institutions, dep.Clock),
	)
	h.Register(api)

	return r
}
