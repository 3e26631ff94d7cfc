package post

import (
	"bytes"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"

	"goblog/internal/user"
)

// Tags that survive sanitization. Anything outside this list is stripped
// outright, never escaped-and-kept.
var allowedTags = []string{
	"a", "abbr", "acronym", "b", "blockquote", "code",
	"em", "i", "li", "ol", "pre", "strong", "ul",
	"h1", "h2", "h3", "p",
}

var (
	// Raw HTML passes through the markdown renderer untouched; the
	// sanitizer below is the single gate deciding what reaches storage.
	renderer = goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(ghtml.WithUnsafe()),
	)
	policy = buildPolicy()
)

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedTags...)
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("title").OnElements("a", "abbr", "acronym")
	p.SkipElementsContent("script", "style")
	return p
}

type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Body      string     `gorm:"type:text" json:"body"`
	BodyHTML  string     `gorm:"type:text" json:"bodyHtml"`
	Timestamp time.Time  `json:"timestamp"`
	AuthorID  uint       `json:"authorId"`
	Author    *user.User `json:"-"`
}

// New builds a post for the given author, routing the body through
// SetBody so the rendered HTML exists from the start.
func New(author *user.User, body string, ts time.Time) *Post {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	p := &Post{AuthorID: author.ID, Author: author, Timestamp: ts}
	p.SetBody(body)
	return p
}

// SetBody assigns the raw markdown body and rederives the sanitized HTML
// in the same step. BodyHTML is never written any other way, so it cannot
// go stale against Body. Templates must only ever render BodyHTML.
func (p *Post) SetBody(raw string) {
	p.Body = raw
	p.BodyHTML = RenderBody(raw)
}

// RenderBody renders markdown to HTML, autolinks bare URLs, and strips
// every tag outside the allow-list.
func RenderBody(raw string) string {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(raw), &buf); err != nil {
		// Conversion never fails for in-memory buffers; sanitize the raw
		// text as a fallback rather than storing anything unchecked.
		return policy.Sanitize(raw)
	}
	return policy.Sanitize(buf.String())
}

// ByAuthor lists an author's posts, newest first.
func ByAuthor(db *gorm.DB, authorID uint) ([]Post, error) {
	var posts []Post
	err := db.Where("author_id = ?", authorID).Order("timestamp desc").Find(&posts).Error
	return posts, err
}

// Recent lists the newest posts across all authors.
func Recent(db *gorm.DB, limit int) ([]Post, error) {
	var posts []Post
	err := db.Order("timestamp desc").Limit(limit).Find(&posts).Error
	return posts, err
}
