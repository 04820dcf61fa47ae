package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// SessionizeResponse is the Sessionize GridSmart API response shape.
type SessionizeResponse []SessionizeDateGrid

// SessionizeDateGrid represents one date's grid of rooms/sessions.
type SessionizeDateGrid struct {
	Date  string           `json:"date"`
	Rooms []SessionizeRoom `json:"rooms"`
}

// SessionizeRoom is a room in the Sessionize response.
type SessionizeRoom struct {
	ID       int                 `json:"id"`
	Name     string              `json:"name"`
	Sessions []SessionizeSession `json:"sessions"`
}

// SessionizeCategoryItem is a single tag/category item in Sessionize.
type SessionizeCategoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SessionizeCategory is a category group in the Sessionize response (e.g. "Track", "Level").
type SessionizeCategory struct {
	ID            int                      `json:"id"`
	Name          string                   `json:"name"`
	CategoryItems []SessionizeCategoryItem `json:"categoryItems"`
	Sort          int                      `json:"sort"`
}

// SessionizeSpeakerRef is the short speaker reference embedded in a GridSmart session.
type SessionizeSpeakerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionizeSession is a session in the Sessionize response.
type SessionizeSession struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Description      *string                `json:"description"`
	StartsAt         SessionizeTime         `json:"startsAt"`
	EndsAt           SessionizeTime         `json:"endsAt"`
	IsServiceSession bool                   `json:"isServiceSession"`
	RoomID           int                    `json:"roomId"`
	Room             string                 `json:"room"`
	Speakers         []SessionizeSpeakerRef `json:"speakers"`
	Categories       []SessionizeCategory   `json:"categories"`
}

// sessionizeLocalLayout is the offset-less local time format Sessionize uses.
const sessionizeLocalLayout = "2006-01-02T15:04:05"

// SessionizeTime is a Sessionize timestamp. Sessionize publishes venue-local
// times without an offset; RFC 3339 values are accepted as well.
type SessionizeTime struct {
	time.Time
}

// UnmarshalJSON parses either layout; null leaves the zero time.
func (t *SessionizeTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(sessionizeLocalLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
