package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"programviewer/internal/domain"
	"programviewer/internal/program"
)

// ProgramRepository reads one event's schedule (rooms, sessions, tags and
// speakers) and exposes it as a program source. It never writes.
type ProgramRepository struct {
	DB      *sql.DB
	EventID string
}

// NewProgramRepository returns a program source for eventID backed by db.
func NewProgramRepository(db *sql.DB, eventID string) *ProgramRepository {
	return &ProgramRepository{
		DB:      db,
		EventID: eventID,
	}
}

type sessionRow struct {
	sessionizeID string
	startsAt     time.Time
	session      domain.Session
}

func (r *ProgramRepository) Load(ctx context.Context) ([]domain.Agenda, error) {
	rows, err := r.listSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	speakers, err := r.listSpeakersBySession(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}

	slots := make([]program.Slot, 0, len(rows))
	for _, row := range rows {
		s := row.session
		if row.sessionizeID != "" {
			s.Speakers = speakers[row.sessionizeID]
		}
		slots = append(slots, program.Slot{StartsAt: row.startsAt, Session: s})
	}
	return program.AgendasFromSlots(slots), nil
}

func (r *ProgramRepository) Describe() string {
	return "postgres:event/" + r.EventID
}

func (r *ProgramRepository) listSessions(ctx context.Context) ([]sessionRow, error) {
	query := `
		SELECT s.id, COALESCE(s.sessionize_session_id, ''), s.title, COALESCE(s.description, ''), s.start_time, r.name,
			COALESCE(array_agg(st.tag ORDER BY st.tag) FILTER (WHERE st.tag IS NOT NULL), '{}')
		FROM sessions s
		JOIN rooms r ON r.id = s.room_id
		LEFT JOIN session_tags st ON st.session_id = s.id
		WHERE r.event_id = $1
		GROUP BY s.id, r.name
		ORDER BY s.start_time, r.name
	`
	rows, err := r.DB.QueryContext(ctx, query, r.EventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []sessionRow
	for rows.Next() {
		var (
			row  sessionRow
			id   string
			tags []string
		)
		if err := rows.Scan(&id, &row.sessionizeID, &row.session.Title, &row.session.Description, &row.startsAt, &row.session.Location, pq.Array(&tags)); err != nil {
			return nil, err
		}
		row.session.ID = domain.ID(id)
		row.session.Tags = domain.TagText(strings.Join(tags, ", "))
		out = append(out, row)
	}
	return out, rows.Err()
}

// listSpeakersBySession returns speakers keyed by the source session they
// were imported with, in name order.
func (r *ProgramRepository) listSpeakersBySession(ctx context.Context) (map[string][]domain.Speaker, error) {
	query := `
		SELECT id, source_session_id, first_name, last_name, COALESCE(tag_line, ''), COALESCE(bio, ''), COALESCE(profile_picture, '')
		FROM speakers
		WHERE event_id = $1
		ORDER BY last_name, first_name
	`
	rows, err := r.DB.QueryContext(ctx, query, r.EventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.Speaker)
	for rows.Next() {
		var (
			sp        domain.Speaker
			id        string
			sessionID string
		)
		if err := rows.Scan(&id, &sessionID, &sp.FirstName, &sp.LastName, &sp.JobTitle, &sp.Bio, &sp.ProfilePictureURL); err != nil {
			return nil, err
		}
		sp.ID = domain.ID(id)
		out[sessionID] = append(out[sessionID], sp)
	}
	return out, rows.Err()
}
