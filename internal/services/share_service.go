package services

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/amanv05/second-brain-backend/internal/models"
)

// shareHashBytes is the entropy of a share hash; 8 random bytes hex-encode to
// a 16 character public token.
const shareHashBytes = 8

// ShareServiceProvider defines the interface for share-link services.
type ShareServiceProvider interface {
	EnableSharing(userID string) (hash string, created bool, err error)
	DisableSharing(userID string) error
	ResolveShare(hash string) ([]models.Content, string, error)
}

// ShareService provides business logic for public share links.
type ShareService struct {
	db       *sql.DB
	contents ContentServiceProvider
	users    UserServiceProvider
}

// NewShareService creates a new ShareService.
func NewShareService(db *sql.DB, contents ContentServiceProvider, users UserServiceProvider) *ShareService {
	return &ShareService{db: db, contents: contents, users: users}
}

// EnableSharing returns the user's share hash, minting one if none exists.
// Repeated calls return the same hash; created reports whether a new link was
// minted by this call. A concurrent enable losing the user_id UNIQUE race
// falls back to the winner's hash, preserving idempotency.
func (s *ShareService) EnableSharing(userID string) (string, bool, error) {
	hash, err := s.hashForUser(userID)
	if err == nil {
		return hash, false, nil
	}
	if err != sql.ErrNoRows {
		return "", false, err
	}

	buf := make([]byte, shareHashBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("failed to generate share hash: %w", err)
	}

	link := models.ShareLink{
		ID:     uuid.New().String(),
		Hash:   hex.EncodeToString(buf),
		UserID: userID,
	}

	_, err = s.db.Exec("INSERT INTO share_links(id, hash, user_id) VALUES(?, ?, ?)",
		link.ID, link.Hash, link.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			existing, selErr := s.hashForUser(userID)
			if selErr == nil {
				return existing, false, nil
			}
		}
		return "", false, err
	}

	return link.Hash, true, nil
}

func (s *ShareService) hashForUser(userID string) (string, error) {
	var hash string
	err := s.db.QueryRow("SELECT hash FROM share_links WHERE user_id = ?", userID).Scan(&hash)
	return hash, err
}

// DisableSharing deletes the user's share link. Deleting a link that does not
// exist is not an error.
func (s *ShareService) DisableSharing(userID string) error {
	_, err := s.db.Exec("DELETE FROM share_links WHERE user_id = ?", userID)
	return err
}

// ResolveShare looks up a share hash and returns the linked user's content
// and username. Unknown hashes return ErrShareLinkNotFound; a dangling owner
// reference returns ErrUserNotFound.
func (s *ShareService) ResolveShare(hash string) ([]models.Content, string, error) {
	var userID string
	err := s.db.QueryRow("SELECT user_id FROM share_links WHERE hash = ?", hash).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", ErrShareLinkNotFound
		}
		return nil, "", err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, "", err
	}

	contents, err := s.contents.ListContentByOwner(userID)
	if err != nil {
		return nil, "", err
	}

	return contents, user.Username, nil
}
