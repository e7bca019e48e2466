package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

// AuthHTTP drives the signin/signup/verify flows against the upstream auth
// endpoints through the per-request session.
type AuthHTTP struct {
	Log *zap.Logger
}

func NewAuthHTTP(log *zap.Logger) *AuthHTTP { return &AuthHTTP{Log: log} }

func (h *AuthHTTP) SigninPage(c *gin.Context) {
	render(c, http.StatusOK, "signin", gin.H{
		"Email":    "",
		"Redirect": safeRedirect(c.Query("redirect")),
		"Verified": c.Query("verified") == "1",
	})
}

func (h *AuthHTTP) Signin(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	redirect := safeRedirect(c.PostForm("redirect"))

	if email == "" || password == "" {
		render(c, http.StatusBadRequest, "signin", gin.H{
			"Error":    "Email and password are required.",
			"Email":    email,
			"Redirect": redirect,
		})
		return
	}

	outcome, err := sessionFrom(c).Login(c.Request.Context(), email, password)
	if err != nil {
		render(c, http.StatusUnauthorized, "signin", gin.H{
			"Error":    loginError(err),
			"Email":    email,
			"Redirect": redirect,
		})
		return
	}
	if outcome.RequiresVerification {
		target := outcome.Email
		if target == "" {
			target = email
		}
		c.Redirect(http.StatusFound, "/verify?email="+url.QueryEscape(target))
		return
	}
	if redirect == "" {
		redirect = "/"
	}
	c.Redirect(http.StatusFound, redirect)
}

func (h *AuthHTTP) SignupPage(c *gin.Context) {
	render(c, http.StatusOK, "signup", nil)
}

func (h *AuthHTTP) Signup(c *gin.Context) {
	req := model.RegisterRequest{
		FullName:    strings.TrimSpace(c.PostForm("fullName")),
		Email:       strings.TrimSpace(c.PostForm("email")),
		Password:    c.PostForm("password"),
		Phone:       strings.TrimSpace(c.PostForm("phone")),
		DateOfBirth: c.PostForm("dateOfBirth"),
		Location:    strings.TrimSpace(c.PostForm("location")),
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		render(c, http.StatusBadRequest, "signup", gin.H{
			"Error": "Full name, email and password are required.",
			"Form":  req,
		})
		return
	}
	if req.Password != c.PostForm("password2") {
		render(c, http.StatusBadRequest, "signup", gin.H{
			"Error": "Passwords do not match.",
			"Form":  req,
		})
		return
	}

	email, err := sessionFrom(c).Register(c.Request.Context(), req)
	if err != nil {
		render(c, http.StatusBadRequest, "signup", gin.H{
			"Error": loginError(err),
			"Form":  req,
		})
		return
	}
	if email == "" {
		email = req.Email
	}
	c.Redirect(http.StatusFound, "/verify?email="+url.QueryEscape(email))
}

func (h *AuthHTTP) VerifyPage(c *gin.Context) {
	render(c, http.StatusOK, "verify", gin.H{
		"Email":  c.Query("email"),
		"Resent": c.Query("resent") == "1",
	})
}

func (h *AuthHTTP) Verify(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	code := strings.TrimSpace(c.PostForm("code"))
	if err := sessionFrom(c).VerifyEmail(c.Request.Context(), email, code); err != nil {
		render(c, http.StatusBadRequest, "verify", gin.H{
			"Email": email,
			"Error": loginError(err),
		})
		return
	}
	c.Redirect(http.StatusFound, "/signin?verified=1")
}

// Resend always lands back on the verify page; whether the email exists is
// not leaked here.
func (h *AuthHTTP) Resend(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if err := sessionFrom(c).ResendCode(c.Request.Context(), email); err != nil {
		h.Log.Warn("resend code failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/verify?email="+url.QueryEscape(email)+"&resent=1")
}

func (h *AuthHTTP) Logout(c *gin.Context) {
	sessionFrom(c).Logout()
	c.Redirect(http.StatusFound, "/")
}

// loginError keeps upstream messages when they exist and hides transport
// noise behind a generic line.
func loginError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

// safeRedirect only accepts local paths, so the redirect param cannot send
// users off-site.
func safeRedirect(to string) string {
	if len(to) > 1 && to[0] == '/' && to[1] != '/' {
		return to
	}
	return ""
}
