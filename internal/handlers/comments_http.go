package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
)

const (
	commentMinLength = 5
	commentMaxLength = 500
)

type CommentsHTTP struct {
	API *api.Client
	Log *zap.Logger
}

func NewCommentsHTTP(client *api.Client, log *zap.Logger) *CommentsHTTP {
	return &CommentsHTTP{API: client, Log: log}
}

// Add posts a comment on a blog post and bounces back to the discussion
// section. New comments sit unapproved until moderation, so the redirect
// carries a pending flash rather than showing the comment.
func (h *CommentsHTTP) Add(c *gin.Context) {
	postID := c.Param("id")
	slug := c.PostForm("slug")
	back := "/blog/" + url.PathEscape(slug)

	content := strings.TrimSpace(c.PostForm("content"))
	// Length limits count characters, not bytes.
	length := utf8.RuneCountInString(content)
	if length < commentMinLength {
		c.Redirect(http.StatusFound, back+"?error=too-short#comments")
		return
	}
	if length > commentMaxLength {
		c.Redirect(http.StatusFound, back+"?error=too-long#comments")
		return
	}

	token := sessionFrom(c).Token()
	if _, err := h.API.AddComment(c.Request.Context(), token, postID, content); err != nil {
		h.Log.Warn("comment submit failed", zap.String("post", postID), zap.Error(err))
		c.Redirect(http.StatusFound, back+"?error=failed#comments")
		return
	}
	c.Redirect(http.StatusFound, back+"?comment=pending#comments")
}
