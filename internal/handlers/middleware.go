package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/auth"
	"github.com/Gabrielduah055/menHealthClient/internal/cart"
)

const (
	ctxSession   = "session"
	ctxCart      = "cart"
	ctxRequestID = "requestID"
)

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(ctxRequestID, id)
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

// Session attaches the auth session for this request. Reconciliation
// against /api/auth/me happens inside NewSession; a rejected token is
// cleared there and the request continues anonymous.
func Session(client *api.Client, sealer *auth.Sealer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokens := auth.NewCookieTokenStorage(sealer, c.Writer, c.Request)
		c.Set(ctxSession, auth.NewSession(c.Request.Context(), client, tokens))
		c.Next()
	}
}

// Cart attaches the cookie-mirrored cart store for this request.
func Cart() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cart.NewStore(cart.NewCookieStorage(c.Writer, c.Request))
		c.Set(ctxCart, store)
		c.Next()
	}
}

// RequireAuth bounces anonymous requests to signin, preserving the
// destination so a successful login lands back where the user started.
func RequireAuth(c *gin.Context) {
	if !sessionFrom(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, "/signin?redirect="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
		return
	}
	c.Next()
}

func sessionFrom(c *gin.Context) *auth.Session {
	return c.MustGet(ctxSession).(*auth.Session)
}

func cartFrom(c *gin.Context) *cart.Store {
	return c.MustGet(ctxCart).(*cart.Store)
}

// render merges the fields every template expects (current user, cart
// badge count) into the page data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sess := sessionFrom(c)
	data["User"] = sess.User()
	data["IsAuthenticated"] = sess.IsAuthenticated()
	data["CartQty"] = cartFrom(c).TotalQty()
	c.HTML(status, name, data)
}
