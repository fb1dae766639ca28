// CLAUDE:SUMMARY SQLite-backed keyword/speaker subscription store for alert generation.
package alerts

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Subscription types.
const (
	TypeKeyword = "keyword"
	TypeSpeaker = "speaker"
	TypeMP      = "mp"
)

// Subscription is one stored alert subscription.
type Subscription struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Email     string `json:"email,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// SubscriptionDB manages the subscriptions SQLite table.
type SubscriptionDB struct {
	db *sql.DB
}

// OpenSubscriptionDB opens (or creates) the SQLite database at path and
// ensures the subscriptions table exists.
func OpenSubscriptionDB(path string) (*SubscriptionDB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open subscription db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS subscriptions (
		id          TEXT PRIMARY KEY,
		sub_type    TEXT NOT NULL,
		value       TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		created_at  INTEGER NOT NULL,
		UNIQUE (sub_type, value, email)
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create subscriptions table: %w", err)
	}

	return &SubscriptionDB{db: db}, nil
}

// Close closes the SQLite connection.
func (s *SubscriptionDB) Close() error {
	return s.db.Close()
}

// Add stores a subscription, ignoring exact duplicates, and returns it.
func (s *SubscriptionDB) Add(subType, value, email string) (Subscription, error) {
	sub := Subscription{
		ID:        "sub_" + randomHex(6),
		Type:      subType,
		Value:     value,
		Email:     email,
		CreatedAt: time.Now().Unix(),
	}
	const q = `INSERT OR IGNORE INTO subscriptions (id, sub_type, value, email, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.Exec(q, sub.ID, sub.Type, sub.Value, sub.Email, sub.CreatedAt)
	if err != nil {
		return Subscription{}, fmt.Errorf("add subscription: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Duplicate: hand back the existing row.
		existing, err := s.find(subType, value, email)
		if err != nil {
			return Subscription{}, err
		}
		return existing, nil
	}
	return sub, nil
}

func (s *SubscriptionDB) find(subType, value, email string) (Subscription, error) {
	var sub Subscription
	err := s.db.QueryRow(
		`SELECT id, sub_type, value, email, created_at FROM subscriptions
		 WHERE sub_type = ? AND value = ? AND email = ?`,
		subType, value, email,
	).Scan(&sub.ID, &sub.Type, &sub.Value, &sub.Email, &sub.CreatedAt)
	if err != nil {
		return Subscription{}, fmt.Errorf("find subscription: %w", err)
	}
	return sub, nil
}

// List returns all subscriptions ordered by creation time.
func (s *SubscriptionDB) List() ([]Subscription, error) {
	rows, err := s.db.Query(
		`SELECT id, sub_type, value, email, created_at FROM subscriptions
		 ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var sub Subscription
		if err := rows.Scan(&sub.ID, &sub.Type, &sub.Value, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Remove deletes a subscription by id.
func (s *SubscriptionDB) Remove(id string) error {
	res, err := s.db.Exec(`DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove subscription: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("subscription %s not found", id)
	}
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
