package app

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/auth"
	"github.com/Gabrielduah055/menHealthClient/internal/handlers"
)

func NewServer(cfg Config, log *zap.Logger) (*gin.Engine, func(), error) {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := api.New(cfg.APIBaseURL, log.Named("api"))
	sealer := auth.NewSealer(cfg.SessionSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(log.Named("http")))

	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob("./web/templates/*.html")
	r.Static("/assets", "./web/assets")

	r.Use(handlers.Session(client, sealer))
	r.Use(handlers.Cart())

	pages := handlers.NewPages(client, cfg.PublicBaseURL, log.Named("pages"))
	cartH := handlers.NewCartHTTP(client, log.Named("cart"))
	authH := handlers.NewAuthHTTP(log.Named("auth"))
	checkout := handlers.NewCheckoutHTTP(client, log.Named("checkout"))
	comments := handlers.NewCommentsHTTP(client, log.Named("comments"))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Storefront
	r.GET("/", pages.Home)
	r.GET("/products", pages.Products)
	r.GET("/products/:slug", pages.ProductDetail)
	r.GET("/blog", pages.BlogIndex)
	r.GET("/blog/:slug", pages.BlogDetail)

	// Cart
	r.GET("/cart", cartH.Page)
	r.POST("/cart/add", cartH.Add)
	r.POST("/cart/update", cartH.Update)
	r.POST("/cart/remove", cartH.Remove)
	r.POST("/cart/clear", cartH.Clear)

	// Checkout
	r.GET("/checkout", handlers.RequireAuth, checkout.Page)
	r.POST("/checkout", handlers.RequireAuth, checkout.Submit)

	// Auth
	r.GET("/signin", authH.SigninPage)
	r.POST("/signin", authH.Signin)
	r.GET("/signup", authH.SignupPage)
	r.POST("/signup", authH.Signup)
	r.GET("/verify", authH.VerifyPage)
	r.POST("/verify", authH.Verify)
	r.POST("/verify/resend", authH.Resend)
	r.POST("/logout", authH.Logout)

	// Comments
	r.POST("/blog/:id/comments", handlers.RequireAuth, comments.Add)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/assets/") {
			c.Status(http.StatusNotFound)
			return
		}
		pages.NotFound(c)
	})

	cleanup := func() { _ = log.Sync() }
	return r, cleanup, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return "GHS " + d.StringFixed(2)
		},
		"date": func(v any) string {
			switch t := v.(type) {
			case time.Time:
				return t.Format("Jan 02, 2006")
			case *time.Time:
				if t == nil {
					return ""
				}
				return t.Format("Jan 02, 2006")
			}
			return ""
		},
		// Blog content arrives as trusted rich text from our own CMS.
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
		"initials": func(name string) string {
			var initials []rune
			for _, p := range strings.Fields(name) {
				r := []rune(p)
				initials = append(initials, r[0])
				if len(initials) == 2 {
					break
				}
			}
			if len(initials) == 0 {
				return "?"
			}
			return strings.ToUpper(string(initials))
		},
	}
}
