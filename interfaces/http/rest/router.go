package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"neuronotes-backend/application/services"
	"neuronotes-backend/infrastructure/config"
	"neuronotes-backend/interfaces/http/rest/handlers"
	"neuronotes-backend/interfaces/http/rest/middleware"
	"neuronotes-backend/pkg/auth"
)

// Router creates and configures the HTTP router.
type Router struct {
	cfg    *config.Config
	tokens *auth.TokenService
	users  *services.UserService
	authn  *services.AuthService
	topics *services.TopicService
	edges  *services.EdgeService
	notes  *services.NoteService
	tags   *services.TagService
	logger *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenService,
	users *services.UserService,
	authn *services.AuthService,
	topics *services.TopicService,
	edges *services.EdgeService,
	notes *services.NoteService,
	tags *services.TagService,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:    cfg,
		tokens: tokens,
		users:  users,
		authn:  authn,
		topics: topics,
		edges:  edges,
		notes:  notes,
		tags:   tags,
		logger: logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints are the only unauthenticated surface.
		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(rt.authn, rt.logger)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.tokens, rt.logger))

			r.Route("/user", func(r chi.Router) {
				userHandler := handlers.NewUserHandler(rt.users, rt.logger)
				r.Get("/", userHandler.Get)
			})

			r.Route("/topics", func(r chi.Router) {
				topicHandler := handlers.NewTopicHandler(rt.users, rt.topics, rt.edges, rt.logger)
				r.Post("/", topicHandler.Create)
				r.Get("/", topicHandler.List)
				// The literal topic-edges segment must be registered before
				// the {topicid} wildcard.
				r.Post("/topic-edges", topicHandler.CreateEdge)
				r.Delete("/topic-edges/{source}/{target}", topicHandler.DeleteEdge)
				r.Get("/{topicid}", topicHandler.Get)
				r.Patch("/{topicid}", topicHandler.Update)
				r.Delete("/{topicid}", topicHandler.Delete)
				r.Get("/{topicid}/edges", topicHandler.ListEdges)
			})

			r.Route("/notes", func(r chi.Router) {
				noteHandler := handlers.NewNoteHandler(rt.users, rt.notes, rt.logger)
				r.Post("/", noteHandler.Create)
				r.Get("/{topicid}", noteHandler.ListByTopic)
				r.Get("/single/{noteid}", noteHandler.Get)
				r.Patch("/{noteid}", noteHandler.Update)
				r.Delete("/{noteid}", noteHandler.Delete)
			})

			r.Route("/tags", func(r chi.Router) {
				tagHandler := handlers.NewTagHandler(rt.users, rt.tags, rt.logger)
				r.Post("/", tagHandler.Create)
				r.Get("/", tagHandler.List)
				r.Get("/{tagid}", tagHandler.Get)
				r.Patch("/{tagid}", tagHandler.Update)
				r.Delete("/{tagid}", tagHandler.Delete)
			})
		})
	})

	return router
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
