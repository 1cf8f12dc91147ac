// ABOUTME: SQLite-backed headline store with upsert-by-url semantics
// ABOUTME: Provides the persistence collaborator behind the search pipeline

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"realify-news-api/core/domain"
)

// Client implements the HeadlineStorage interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewHeadlineStore creates a new SQLite headline store
func NewHeadlineStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "realify_news.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the headlines table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS headlines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			url TEXT UNIQUE NOT NULL,
			picture TEXT,
			heading TEXT,
			summary TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// Upsert persists a headline. INSERT OR REPLACE deletes any existing row for
// the URL and reinserts it, so the persistence timestamp and row id are
// refreshed on replace.
func (c *Client) Upsert(ctx context.Context, headline *domain.Headline) error {
	if headline == nil || headline.URL == "" {
		return errors.New("headline url cannot be empty")
	}

	query := `
		INSERT OR REPLACE INTO headlines (url, source, picture, heading, summary)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query,
		headline.URL,
		string(headline.Source),
		headline.Picture,
		headline.Heading,
		headline.Summary,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert headline: %w", err)
	}

	return nil
}

// ListRecent retrieves up to limit headlines, most recently persisted first.
func (c *Client) ListRecent(ctx context.Context, limit int) ([]domain.Headline, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	query := `
		SELECT url, source, picture, heading, summary, created_at
		FROM headlines
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list headlines: %w", err)
	}
	defer rows.Close()

	headlines := make([]domain.Headline, 0, limit)
	for rows.Next() {
		var h domain.Headline
		var source string
		if err := rows.Scan(&h.URL, &source, &h.Picture, &h.Heading, &h.Summary, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan headline: %w", err)
		}
		h.Source = domain.Source(source)
		headlines = append(headlines, h)
	}

	return headlines, rows.Err()
}

// Close closes the underlying database handle
func (c *Client) Close() error {
	return c.db.Close()
}
