package sessionize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"programviewer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gridSmartFixture = `[
  {
    "date": "2025-05-20T00:00:00",
    "rooms": [
      {
        "id": 1,
        "name": "Main Hall",
        "sessions": [
          {
            "id": "101",
            "title": "Opening Keynote",
            "description": "Welcome",
            "startsAt": "2025-05-20T09:00:00",
            "endsAt": "2025-05-20T09:45:00",
            "roomId": 1,
            "speakers": [{"id": "sp-1", "name": "Grace Brewster Hopper"}],
            "categories": [
              {"id": 1, "name": "Track", "categoryItems": [{"id": 10, "name": "Cloud"}, {"id": 11, "name": "Go"}]},
              {"id": 2, "name": "Level", "categoryItems": [{"id": 20, "name": "Go"}]}
            ]
          },
          {
            "id": "102",
            "title": "Lunch",
            "description": null,
            "startsAt": "2025-05-20T12:00:00",
            "endsAt": "2025-05-20T13:00:00",
            "isServiceSession": true,
            "roomId": 1,
            "speakers": [{"id": "x", "name": "Nobody"}]
          }
        ]
      },
      {
        "id": 2,
        "name": "Room B",
        "sessions": [
          {
            "id": "201",
            "title": "Parallel Talk",
            "startsAt": "2025-05-20T09:00:00",
            "endsAt": "2025-05-20T09:45:00",
            "roomId": 2
          }
        ]
      }
    ]
  }
]`

func TestSessionizeHTTPFetcher_Fetch(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(gridSmartFixture))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), srv.URL+"/")
	data, err := f.Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "/abc123/view/GridSmart", gotPath)
	require.Len(t, data, 1)
	require.Len(t, data[0].Rooms, 2)
	assert.Equal(t, 9, data[0].Rooms[0].Sessions[0].StartsAt.Hour())
}

func TestSessionizeHTTPFetcher_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-200 status", http.StatusNotFound, `{}`},
		{"malformed body", http.StatusOK, `{not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPFetcher(srv.Client(), srv.URL).Fetch(context.Background(), "abc")
			require.Error(t, err)
		})
	}
}

func TestSource_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(gridSmartFixture))
	}))
	defer srv.Close()

	src := NewSource(srv.Client(), srv.URL, "abc123")
	assert.Equal(t, "sessionize:abc123", src.Describe())

	agendas, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, agendas, 1)

	day := agendas[0]
	assert.Equal(t, "2025-05-20", day.Date)
	require.Len(t, day.Events, 2)

	morning := day.Events[0]
	assert.Equal(t, "09:00", morning.Start)
	require.Len(t, morning.Items, 2)
	keynote := morning.Items[0]
	assert.Equal(t, domain.ID("101"), keynote.ID)
	assert.Equal(t, "Main Hall", keynote.Location)
	assert.Equal(t, domain.TagText("Cloud, Go"), keynote.Tags)
	require.Len(t, keynote.Speakers, 1)
	assert.Equal(t, "Grace", keynote.Speakers[0].FirstName)
	assert.Equal(t, "Brewster Hopper", keynote.Speakers[0].LastName)
	assert.Equal(t, "Room B", morning.Items[1].Location)

	lunch := day.Events[1].Items[0]
	assert.Equal(t, "12:00", day.Events[1].Start)
	assert.Empty(t, lunch.Description)
	assert.Empty(t, lunch.Speakers)
}
