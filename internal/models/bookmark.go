package models

import "time"

// Bookmark marks a (user, event) favorite pair. The pair is unique at the
// database level; the row is created and deleted, never updated.
type Bookmark struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	EventID   int       `db:"event_id" json:"event_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BookmarkWithUser is one bookmark row on the organizer's bookmark list.
type BookmarkWithUser struct {
	Bookmark
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
