package server

import (
	"context"
	"ctchen222/Cat-Match/internal/api/controller"
	"ctchen222/Cat-Match/internal/hub"
	"ctchen222/Cat-Match/internal/middleware"
	"ctchen222/Cat-Match/internal/web"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Options configures the HTTP surface.
type Options struct {
	UploadDir      string
	AllowedOrigins []string
}

// Controllers groups the request handlers the server routes to.
type Controllers struct {
	Auth  *middleware.AuthMiddleware
	Users *controller.UserController
	Cats  *controller.CatController
	Likes *controller.LikeController
	API   *controller.APIController
}

type Server struct {
	engine   *gin.Engine
	hub      *hub.Hub
	upgrader websocket.Upgrader
	opts     Options
}

func NewServer(opts Options, h *hub.Hub, ctrl Controllers, renderer render.HTMLRender) *Server {
	s := &Server{
		engine: gin.New(),
		hub:    h,
		opts:   opts,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	s.engine.HTMLRender = renderer
	s.engine.Use(gin.Recovery())
	s.engine.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz"},
	}))
	s.registerRoutes(ctrl)
	return s
}

// Engine returns the gin engine serving every route.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes(ctrl Controllers) {
	r := s.engine

	r.Static("/static/photos", s.opts.UploadDir)
	r.StaticFS("/assets", http.FS(web.Assets()))
	r.GET("/healthz", ctrl.API.Health)

	site := r.Group("/", ctrl.Auth.LoadUser())
	{
		site.GET("/", ctrl.Cats.Index)
		site.GET("/register", ctrl.Users.RegisterForm)
		site.POST("/register", ctrl.Users.Register)
		site.GET("/login", ctrl.Users.LoginForm)
		site.POST("/login", ctrl.Users.Login)
		site.POST("/logout", ctrl.Users.Logout)
	}

	protected := site.Group("/", ctrl.Auth.RequireAuth())
	{
		protected.GET("/account", ctrl.Cats.Account)
		protected.GET("/cats/new", ctrl.Cats.NewForm)
		protected.POST("/cats/new", ctrl.Cats.Create)
		protected.GET("/cats/:id", ctrl.Cats.Profile)
		protected.POST("/cats/:id", ctrl.Cats.Profile)
		protected.POST("/cats/delete/:cat_id", ctrl.Cats.Delete)
		protected.POST("/add_maybe/:cat_id/:liked_cat_id", ctrl.Likes.AddMaybe)
		protected.GET("/ws", s.handleWebSocket)
	}

	api := r.Group("/api")
	if len(s.opts.AllowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:     s.opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	api.Use(ctrl.Auth.LoadUser(), ctrl.Auth.RequireAuth())
	{
		api.GET("/cats", ctrl.API.ListCats)
		api.GET("/cats/:id/relations", ctrl.API.Relations)
	}
}

// handleWebSocket upgrades the connection of a logged-in user and hands it
// to the hub.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
	))
	defer span.End()

	identity, _ := middleware.CurrentIdentity(c)
	span.SetAttributes(attribute.Int64("user.id", identity.UserID))

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	hub.NewClient(s.hub, identity.UserID, conn).Serve(context.WithoutCancel(ctx))
}

// checkOrigin accepts same-host origins and the configured API origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	return slices.Contains(s.opts.AllowedOrigins, origin)
}
