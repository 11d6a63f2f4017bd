package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"eticket/internal/auth"
	"eticket/internal/booking"
	"eticket/internal/catalog"
	"eticket/internal/news"
	"eticket/internal/seating"
	"eticket/internal/shared/config"
	"eticket/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	redisClient  *redis.Client // nil when redis is disabled
	cacheService cache.Service

	// shared across route groups
	catalogService catalog.Service
	seatingService seating.Service
	bookingStore   booking.Store
}

// NewRouter creates a new router instance. redisClient may be nil; every
// cached path degrades to the mock providers.
func NewRouter(cfg *config.Config, redisClient *redis.Client) *Router {
	r := &Router{
		config:      cfg,
		redisClient: redisClient,
	}
	if redisClient != nil {
		r.cacheService = cache.NewService(redisClient)
	}
	return r
}

// BookingStore exposes the session store so main can start its janitor
func (r *Router) BookingStore() booking.Store {
	return r.bookingStore
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupSeatingRoutes(api)
		r.setupNewsRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Redis is optional infrastructure; report it without failing health
		redisOK := r.redisClient == nil
		if r.cacheService != nil {
			redisOK = r.cacheService.Ping(c.Request.Context()) == nil
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"redis":     redisOK,
			"timestamp": time.Now(),
			"service":   "eticket-storefront",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures the stub login routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService, err := auth.NewService(r.config)
	if err != nil {
		// bcrypt of a constant cannot fail at runtime; treat as programmer error
		panic(err)
	}
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupCatalogRoutes configures event browsing routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.config.Provider.EventListDelay, r.config.Provider.EventDetailDelay)
	catalogService := catalog.NewService(catalogRepo, r.config.Redis.CacheTTL)

	if r.cacheService != nil {
		catalogService.SetCacheService(r.cacheService)
	}

	r.catalogService = catalogService
	catalogController := catalog.NewController(catalogService)

	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupSeatingRoutes configures seat map routes
func (r *Router) setupSeatingRoutes(rg *gin.RouterGroup) {
	seatingRepo := seating.NewRepository(r.config.Provider.LayoutSeed, r.config.Provider.LayoutDelay, catalog.FixtureEventIDs())
	seatingService := seating.NewService(seatingRepo)

	r.seatingService = seatingService
	seatingController := seating.NewController(seatingService)

	seating.SetupSeatingRoutes(rg, seatingController)
}

// setupNewsRoutes configures news routes
func (r *Router) setupNewsRoutes(rg *gin.RouterGroup) {
	newsRepo := news.NewRepository(r.config.Provider.NewsListDelay, r.config.Provider.NewsDetailDelay)
	newsController := news.NewController(newsRepo)

	news.SetupNewsRoutes(rg, newsController)
}

// setupBookingRoutes configures the booking flow routes. Must run after
// catalog and seating so their services exist for injection.
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	r.bookingStore = booking.NewStore(r.config.Booking.SessionTTL)

	engine := seating.NewEngine(r.config.Booking.MaxSeatsPerBooking)
	processor := booking.NewSimulatedProcessor(r.config.Booking.PaymentDelay)

	bookingService := booking.NewService(r.bookingStore, r.catalogService, r.seatingService,
		engine, processor, r.config.QR)
	bookingController := booking.NewController(bookingService)

	booking.SetupBookingRoutes(rg, bookingController)
}
