package app

import (
	"net/http"
	"time"

	"facebook-auth/internal/auth/facebook"
	"facebook-auth/internal/config"
	"facebook-auth/internal/handler"
	"facebook-auth/internal/middleware"
	"facebook-auth/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	appCfg, err := facebook.NewAppConfig(
		cfg.FacebookClientID,
		cfg.FacebookClientSecret,
		cfg.FacebookCallbackURL,
		cfg.FacebookPermissions,
	)
	if err != nil {
		return nil, nil, err
	}

	fb := facebook.NewClient(appCfg)
	graph := facebook.NewGraphClient(&http.Client{Timeout: 10 * time.Second})

	sessionStore := session.NewRedisStore(infra.Redis.Client)

	loader := middleware.NewLoader(sessionStore, cfg.SessionTTL, session.CookieOptions{
		Secure: cfg.SecureCookies,
	})
	callback := middleware.NewCallbackExchange(appCfg, fb)
	reauth := middleware.NewReAuthRedirect(fb)

	appHandler := handler.New(graph)

	// Outside-in: session loading, callback exchange, re-auth
	// interception, credential binding, then the application handler.
	wrap := func(h middleware.Handler) gin.HandlerFunc {
		return middleware.Gin(middleware.Chain(h,
			loader.Wrap,
			callback.Wrap,
			reauth.Wrap,
			middleware.BindCredential,
		))
	}

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLog())

	router.GET("/", wrap(appHandler.Home))
	router.GET("/me", wrap(appHandler.Me))
	router.GET("/login", wrap(appHandler.Login))
	router.POST("/logout", wrap(appHandler.Logout))

	// The provider redirects the browser back here; once the exchange
	// middleware has consumed the code, the route behaves as home.
	if path := appCfg.CallbackPath(); path != "" && path != "/" {
		router.GET(path, wrap(appHandler.Home))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, func() error {
		return infra.Redis.Close()
	}, nil
}
