// Package sanitizer cleans generated HTML before it is placed in an email body.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	messagePolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Formatting a Markdown message can produce; nothing else survives.
		messagePolicy = bluemonday.NewPolicy()
		messagePolicy.AllowStandardURLs()
		messagePolicy.AllowElements(
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		messagePolicy.AllowAttrs("href").OnElements("a")
		messagePolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeMessage keeps basic formatting (paragraphs, headings, emphasis, lists,
// code, quotes, links) and strips everything else, including scripts, event
// handlers and javascript: URLs.
func SanitizeMessage(s string) string {
	initPolicies()
	return messagePolicy.Sanitize(s)
}
