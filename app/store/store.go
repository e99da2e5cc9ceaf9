package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

type FileStore struct {
	path      string
	maxPosts  int
	siteTitle string
}

func NewFileStore(path string, maxPosts int, siteTitle string) *FileStore {
	return &FileStore{
		path:      path,
		maxPosts:  maxPosts,
		siteTitle: siteTitle,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load never fails: an unreadable or corrupt document is replaced by an empty one.
func (s *FileStore) Load() *Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Feed document not found, starting empty", "path", s.path)
		} else {
			slog.Warn("Failed to read feed document, starting empty", "path", s.path, "error", err)
		}
		return s.defaultDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("Failed to parse feed document, starting empty", "path", s.path, "error", err)
		return s.defaultDocument()
	}

	if doc.Posts == nil {
		doc.Posts = []Post{}
	}

	slog.Debug("Feed document loaded", "path", s.path, "posts", len(doc.Posts))
	return &doc
}

// Save truncates posts to the configured cap and rewrites the whole file.
func (s *FileStore) Save(doc *Document) error {
	trimmed := Document{
		Site:  doc.Site,
		Posts: doc.Posts,
	}
	if s.maxPosts > 0 && len(trimmed.Posts) > s.maxPosts {
		trimmed.Posts = trimmed.Posts[:s.maxPosts]
	}
	if trimmed.Posts == nil {
		trimmed.Posts = []Post{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(trimmed); err != nil {
		return fmt.Errorf("failed to encode feed document: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write feed document: %w", err)
	}

	slog.Debug("Feed document saved", "path", s.path, "posts", len(trimmed.Posts))
	return nil
}

func (s *FileStore) defaultDocument() *Document {
	return &Document{
		Site:  Site{Title: s.siteTitle},
		Posts: []Post{},
	}
}
