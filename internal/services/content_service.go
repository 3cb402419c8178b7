package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/amanv05/second-brain-backend/internal/models"
)

// ContentServiceProvider defines the interface for content services.
type ContentServiceProvider interface {
	CreateContent(userID, link, title, contentType string, tags []string) (models.Content, error)
	ListContentByOwner(userID string) ([]models.Content, error)
	DeleteContent(userID, contentID string) error
}

// ContentService provides business logic for saved content.
type ContentService struct {
	db *sql.DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{db: db}
}

// CreateContent persists a new content row owned by userID. Tag titles are
// upserted into the tags table and linked to the content; tags shared between
// users resolve to the same row.
func (s *ContentService) CreateContent(userID, link, title, contentType string, tags []string) (models.Content, error) {
	content := models.Content{
		ID:     uuid.New().String(),
		Link:   link,
		Type:   contentType,
		Title:  title,
		Tags:   []string{},
		UserID: userID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Content{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO contents(id, link, type, title, user_id) VALUES(?, ?, ?, ?, ?)",
		content.ID, content.Link, content.Type, content.Title, content.UserID)
	if err != nil {
		return models.Content{}, fmt.Errorf("failed to insert content: %w", err)
	}

	for _, tagTitle := range tags {
		tag, err := resolveTag(tx, tagTitle)
		if err != nil {
			return models.Content{}, err
		}
		_, err = tx.Exec("INSERT OR IGNORE INTO content_tags(content_id, tag_id) VALUES(?, ?)", content.ID, tag.ID)
		if err != nil {
			return models.Content{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Content{}, err
	}

	content.Tags = dedupe(tags)
	return content, nil
}

// resolveTag finds a tag by title or inserts it.
func resolveTag(tx *sql.Tx, title string) (models.Tag, error) {
	tag := models.Tag{Title: title}
	err := tx.QueryRow("SELECT id FROM tags WHERE title = ?", title).Scan(&tag.ID)
	if err == nil {
		return tag, nil
	}
	if err != sql.ErrNoRows {
		return models.Tag{}, err
	}

	tag.ID = uuid.New().String()
	if _, err := tx.Exec("INSERT INTO tags(id, title) VALUES(?, ?)", tag.ID, tag.Title); err != nil {
		return models.Tag{}, fmt.Errorf("failed to insert tag %q: %w", title, err)
	}
	return tag, nil
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := []string{}
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	return result
}

// ListContentByOwner retrieves all content owned by userID with the owner
// reference resolved to the username. An owner with no content yields an
// empty slice, not an error.
func (s *ContentService) ListContentByOwner(userID string) ([]models.Content, error) {
	const query = `
		SELECT c.id, c.link, c.type, c.title, c.user_id, u.username
		FROM contents c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = ?
		ORDER BY c.rowid`
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := []models.Content{}
	for rows.Next() {
		var c models.Content
		if err := rows.Scan(&c.ID, &c.Link, &c.Type, &c.Title, &c.UserID, &c.Username); err != nil {
			return nil, err
		}
		c.Tags, err = s.loadTags(c.ID)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, rows.Err()
}

// loadTags returns the tag titles linked to a content row.
func (s *ContentService) loadTags(contentID string) ([]string, error) {
	const query = `
		SELECT t.title
		FROM content_tags ct
		JOIN tags t ON t.id = ct.tag_id
		WHERE ct.content_id = ?
		ORDER BY ct.rowid`
	rows, err := s.db.Query(query, contentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		tags = append(tags, title)
	}
	return tags, rows.Err()
}

// DeleteContent removes the content row matching both contentID and userID.
// The compound predicate enforces ownership in the same statement, so a
// caller guessing another user's content id gets ErrContentNotFound.
func (s *ContentService) DeleteContent(userID, contentID string) error {
	res, err := s.db.Exec("DELETE FROM contents WHERE id = ? AND user_id = ?", contentID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContentNotFound
	}
	return nil
}
