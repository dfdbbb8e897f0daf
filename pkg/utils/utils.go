package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
	"github.com/oklog/ulid/v2"
)

var (
	ErrFileRequired = errors.New("no file uploaded")
	ErrFileTooLarge = errors.New("file size exceeds limit")
	ErrNotAnImage   = errors.New("uploaded file is not an image")
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	Slugify(title string) string
	EstimateReadTime(content string) string
	DisplayDate(t time.Time) string
	ValidateImageFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	wordsPerMinute  = 200
)

// Slugify derives a URL-safe identifier from a post title: transliterated to
// ASCII, lowercased, punctuation stripped, whitespace collapsed to single
// hyphens, no leading or trailing hyphens.
func (u *utils) Slugify(title string) string {
	s := unidecode.Unidecode(title)
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EstimateReadTime derives a "<n> min read" label from the post body,
// ignoring HTML markup.
func (u *utils) EstimateReadTime(content string) string {
	text := htmlTagPattern.ReplaceAllString(content, " ")
	words := len(strings.Fields(text))

	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}

// DisplayDate renders timestamps the way the site shows them, e.g. "Nov 15, 2024".
func (u *utils) DisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > u.maxFileSize {
		return ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}

	return nil
}
