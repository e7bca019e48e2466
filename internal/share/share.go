// Package share builds the social share links for blog posts.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

type Target struct {
	Key   string
	Label string
	Icon  string
}

// Targets are rendered in this order. "copy" has no outbound URL; the page
// handles it with a clipboard action.
var Targets = []Target{
	{Key: "facebook", Label: "Share on Facebook", Icon: "uil-facebook-f"},
	{Key: "twitter", Label: "Share on X (Twitter)", Icon: "uil-twitter"},
	{Key: "linkedin", Label: "Share on LinkedIn", Icon: "uil-linkedin"},
	{Key: "whatsapp", Label: "Share on WhatsApp", Icon: "uil-whatsapp"},
	{Key: "email", Label: "Share via Email", Icon: "uil-envelope"},
	{Key: "copy", Label: "Copy link", Icon: "uil-link"},
}

// PostURL is the canonical shareable address of a blog post.
func PostURL(base, slug string) string {
	return strings.TrimRight(base, "/") + "/blog/" + url.PathEscape(slug)
}

// URL returns the outbound link for a target, or "" for targets with no
// outbound URL (copy).
func URL(key, shareURL, title string) string {
	switch key {
	case "facebook":
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(shareURL)
	case "twitter":
		return fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s",
			url.QueryEscape(shareURL), url.QueryEscape(title))
	case "linkedin":
		return fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s&title=%s",
			url.QueryEscape(shareURL), url.QueryEscape(title))
	case "whatsapp":
		return "https://wa.me/?text=" + url.QueryEscape(title+" "+shareURL)
	case "email":
		body := "I thought you might find this interesting:\n\n" + shareURL
		return fmt.Sprintf("mailto:?subject=%s&body=%s",
			url.QueryEscape(title), url.QueryEscape(body))
	default:
		return ""
	}
}

// Link pairs a target with its resolved URL for template rendering.
type Link struct {
	Target
	URL string
}

func Links(base, slug, title string) []Link {
	shareURL := PostURL(base, slug)
	out := make([]Link, 0, len(Targets))
	for _, t := range Targets {
		out = append(out, Link{Target: t, URL: URL(t.Key, shareURL, title)})
	}
	return out
}
