package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"eventsphere/internal/config"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

const uniqueViolation = "23505"

type Storage struct {
	DB *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS events (
	id           SERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	city         TEXT NOT NULL,
	address      TEXT NOT NULL,
	pincode      INTEGER NOT NULL,
	category     TEXT NOT NULL,
	description  TEXT NOT NULL,
	image        TEXT NOT NULL,
	starts_at    TIMESTAMPTZ NOT NULL,
	ends_at      TIMESTAMPTZ NOT NULL,
	ticket_price INTEGER NOT NULL CHECK (ticket_price >= 0),
	user_id      INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS bookings (
	id           SERIAL PRIMARY KEY,
	event_id     INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	user_id      INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	reference    TEXT NOT NULL,
	booked_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_cancelled BOOLEAN NOT NULL DEFAULT FALSE,
	cancelled_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS tickets (
	id        SERIAL PRIMARY KEY,
	event_id  INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	user_id   INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	quantity  INTEGER NOT NULL DEFAULT 1,
	booked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bookmarks (
	id         SERIAL PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	event_id   INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, event_id)
);`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// --- users ---

func (s *Storage) CreateUser(email, passwordHash, name string) (int, error) {
	const op = "storage.postgres.CreateUser"

	var id int
	err := s.DB.QueryRowx(
		`INSERT INTO users (email, password_hash, name) VALUES ($1, $2, $3) RETURNING id`,
		email, passwordHash, name,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, storage.ErrEmailTaken
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	var user models.User
	err := s.DB.Get(&user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) UserByID(id int) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	var user models.User
	err := s.DB.Get(&user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

// --- events ---

func (s *Storage) CreateEvent(e *models.Event) (int, error) {
	const op = "storage.postgres.CreateEvent"

	var id int
	err := s.DB.QueryRowx(
		`INSERT INTO events (title, city, address, pincode, category, description, image, starts_at, ends_at, ticket_price, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		e.Title, e.City, e.Address, e.Pincode, e.Category, e.Description,
		e.Image, e.StartsAt, e.EndsAt, e.TicketPrice, e.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	var event models.Event
	err := s.DB.Get(&event, `SELECT * FROM events WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

// OwnedEvent fetches an event only when it belongs to the given user.
// A non-owner gets ErrEventNotFound, never a permission error.
func (s *Storage) OwnedEvent(eventID, userID int) (*models.Event, error) {
	const op = "storage.postgres.OwnedEvent"

	var event models.Event
	err := s.DB.Get(&event, `SELECT * FROM events WHERE id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

// ListFirstEvents returns the first events ever listed, oldest first.
func (s *Storage) ListFirstEvents(limit int) ([]models.Event, error) {
	const op = "storage.postgres.ListFirstEvents"

	var events []models.Event
	err := s.DB.Select(&events, `SELECT * FROM events ORDER BY id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) ListEvents() ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	var events []models.Event
	err := s.DB.Select(&events, `SELECT * FROM events ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// SearchEvents filters by a case-insensitive substring over title and/or
// city, and optionally by the calendar day the event starts on.
func (s *Storage) SearchEvents(query, searchType string, day *time.Time) ([]models.Event, error) {
	const op = "storage.postgres.SearchEvents"

	q := `SELECT * FROM events WHERE 1=1`
	args := []interface{}{}

	if query != "" {
		pattern := "%" + query + "%"
		switch searchType {
		case "name":
			args = append(args, pattern)
			q += fmt.Sprintf(` AND title ILIKE $%d`, len(args))
		case "location":
			args = append(args, pattern)
			q += fmt.Sprintf(` AND city ILIKE $%d`, len(args))
		default:
			args = append(args, pattern)
			q += fmt.Sprintf(` AND (title ILIKE $%d OR city ILIKE $%d)`, len(args), len(args))
		}
	}

	if day != nil {
		args = append(args, *day)
		q += fmt.Sprintf(` AND starts_at >= $%d`, len(args))
		args = append(args, day.AddDate(0, 0, 1))
		q += fmt.Sprintf(` AND starts_at < $%d`, len(args))
	}

	q += ` ORDER BY id ASC`

	var events []models.Event
	if err := s.DB.Select(&events, q, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) DeleteEvent(id int) error {
	const op = "storage.postgres.DeleteEvent"

	res, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) UpdateTicketPrice(eventID, price int) error {
	const op = "storage.postgres.UpdateTicketPrice"

	res, err := s.DB.Exec(`UPDATE events SET ticket_price = $1 WHERE id = $2`, price, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// CountTickets counts rows in the secondary tickets table. The delete-event
// guard reads this, not the bookings count.
func (s *Storage) CountTickets(eventID int) (int, error) {
	const op = "storage.postgres.CountTickets"

	var count int
	err := s.DB.Get(&count, `SELECT COUNT(*) FROM tickets WHERE event_id = $1`, eventID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// --- bookings ---

func (s *Storage) CreateBooking(eventID, userID int, reference string) (int, error) {
	const op = "storage.postgres.CreateBooking"

	var id int
	err := s.DB.QueryRowx(
		`INSERT INTO bookings (event_id, user_id, reference) VALUES ($1, $2, $3) RETURNING id`,
		eventID, userID, reference,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// BookingForUser fetches a booking joined with its event, but only for the
// booking's owner.
func (s *Storage) BookingForUser(bookingID, userID int) (*models.BookingDetail, error) {
	const op = "storage.postgres.BookingForUser"

	var detail models.BookingDetail
	err := s.DB.Get(&detail,
		`SELECT b.id, b.event_id, b.user_id, b.reference, b.booked_at, b.is_cancelled, b.cancelled_at,
		        e.title AS event_title, e.city AS event_city, e.image AS event_image, e.starts_at AS event_starts_at
		 FROM bookings b
		 JOIN events e ON e.id = b.event_id
		 WHERE b.id = $1 AND b.user_id = $2`,
		bookingID, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &detail, nil
}

func (s *Storage) ListUserBookings(userID int) ([]models.BookingDetail, error) {
	const op = "storage.postgres.ListUserBookings"

	var bookings []models.BookingDetail
	err := s.DB.Select(&bookings,
		`SELECT b.id, b.event_id, b.user_id, b.reference, b.booked_at, b.is_cancelled, b.cancelled_at,
		        e.title AS event_title, e.city AS event_city, e.image AS event_image, e.starts_at AS event_starts_at
		 FROM bookings b
		 JOIN events e ON e.id = b.event_id
		 WHERE b.user_id = $1
		 ORDER BY b.booked_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) CancelBooking(bookingID int, cancelledAt time.Time) error {
	const op = "storage.postgres.CancelBooking"

	res, err := s.DB.Exec(
		`UPDATE bookings SET is_cancelled = TRUE, cancelled_at = $1 WHERE id = $2 AND NOT is_cancelled`,
		cancelledAt, bookingID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

func (s *Storage) ListEventAttendees(eventID int) ([]models.Attendee, error) {
	const op = "storage.postgres.ListEventAttendees"

	var attendees []models.Attendee
	err := s.DB.Select(&attendees,
		`SELECT b.id AS booking_id, b.reference, u.name, u.email, b.booked_at, b.is_cancelled
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 WHERE b.event_id = $1
		 ORDER BY b.id DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return attendees, nil
}

// --- bookmarks ---

// ToggleBookmark flips the (user, event) favorite relation and returns the
// resulting state: true when the bookmark now exists. A concurrent duplicate
// insert surfaces the unique constraint as ErrBookmarkExists.
func (s *Storage) ToggleBookmark(userID, eventID int) (bool, error) {
	const op = "storage.postgres.ToggleBookmark"

	res, err := s.DB.Exec(
		`DELETE FROM bookmarks WHERE user_id = $1 AND event_id = $2`,
		userID, eventID,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if affected > 0 {
		return false, nil
	}

	_, err = s.DB.Exec(
		`INSERT INTO bookmarks (user_id, event_id) VALUES ($1, $2)`,
		userID, eventID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return false, storage.ErrBookmarkExists
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (s *Storage) IsBookmarked(userID, eventID int) (bool, error) {
	const op = "storage.postgres.IsBookmarked"

	var exists bool
	err := s.DB.Get(&exists,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND event_id = $2)`,
		userID, eventID,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) BookmarkedEventIDs(userID int) ([]int, error) {
	const op = "storage.postgres.BookmarkedEventIDs"

	var ids []int
	err := s.DB.Select(&ids,
		`SELECT event_id FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

func (s *Storage) ListBookmarkedEvents(userID int) ([]models.Event, error) {
	const op = "storage.postgres.ListBookmarkedEvents"

	var events []models.Event
	err := s.DB.Select(&events,
		`SELECT e.*
		 FROM bookmarks bm
		 JOIN events e ON e.id = bm.event_id
		 WHERE bm.user_id = $1
		 ORDER BY bm.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) ListEventBookmarks(eventID int) ([]models.BookmarkWithUser, error) {
	const op = "storage.postgres.ListEventBookmarks"

	var bookmarks []models.BookmarkWithUser
	err := s.DB.Select(&bookmarks,
		`SELECT bm.id, bm.user_id, bm.event_id, bm.created_at, u.name, u.email
		 FROM bookmarks bm
		 JOIN users u ON u.id = bm.user_id
		 WHERE bm.event_id = $1
		 ORDER BY bm.created_at DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookmarks, nil
}

// --- organizer rollups ---

// ListOwnerEventsWithStats lists the organizer's events, newest first, with
// bookings and bookmarks counted per event. Cancelled bookings stay in the
// tickets-sold count.
func (s *Storage) ListOwnerEventsWithStats(userID int) ([]models.EventWithStats, error) {
	const op = "storage.postgres.ListOwnerEventsWithStats"

	var events []models.EventWithStats
	err := s.DB.Select(&events,
		`SELECT e.*,
		        (SELECT COUNT(*) FROM bookings b WHERE b.event_id = e.id)  AS tickets_sold,
		        (SELECT COUNT(*) FROM bookmarks bm WHERE bm.event_id = e.id) AS bookmarks_count,
		        (SELECT COUNT(*) FROM bookings b WHERE b.event_id = e.id) * e.ticket_price AS revenue
		 FROM events e
		 WHERE e.user_id = $1
		 ORDER BY e.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// ListOwnerEventStats returns the analytics input rows in listing order
// (ascending id), which fixes the tie order of the top-5 rankings.
func (s *Storage) ListOwnerEventStats(userID int) ([]models.EventStat, error) {
	const op = "storage.postgres.ListOwnerEventStats"

	var stats []models.EventStat
	err := s.DB.Select(&stats,
		`SELECT e.id AS event_id, e.title, e.category, e.ticket_price,
		        (SELECT COUNT(*) FROM bookings b WHERE b.event_id = e.id) AS tickets_sold
		 FROM events e
		 WHERE e.user_id = $1
		 ORDER BY e.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
