package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"programviewer/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sessionCols = []string{"id", "sessionize_session_id", "title", "description", "start_time", "name", "tags"}
	speakerCols = []string{"id", "source_session_id", "first_name", "last_name", "tag_line", "bio", "profile_picture"}
)

func TestProgramRepository_Load(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 5, 21, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		check   func(t *testing.T, agendas []domain.Agenda)
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT s.id`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(sessionCols).
						AddRow("sess-1", "101", "Keynote", "Welcome", day1, "Main Hall", "{cloud,go}").
						AddRow("sess-2", "", "Break", "", day1, "Foyer", "{}").
						AddRow("sess-3", "301", "Workshop", "", day2, "Lab", "{}"))
				mock.ExpectQuery(`FROM speakers`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(speakerCols).
						AddRow("sp-1", "101", "Grace", "Hopper", "Admiral", "COBOL", "").
						AddRow("sp-2", "999", "Other", "Person", "", "", ""))
			},
			check: func(t *testing.T, agendas []domain.Agenda) {
				require.Len(t, agendas, 2)
				assert.Equal(t, "2025-05-20", agendas[0].Date)
				require.Len(t, agendas[0].Events, 1)
				items := agendas[0].Events[0].Items
				require.Len(t, items, 2)
				assert.Equal(t, domain.ID("sess-1"), items[0].ID)
				assert.Equal(t, "Main Hall", items[0].Location)
				assert.Equal(t, domain.TagText("cloud, go"), items[0].Tags)
				require.Len(t, items[0].Speakers, 1)
				assert.Equal(t, "Admiral", items[0].Speakers[0].JobTitle)
				assert.Empty(t, items[1].Speakers)
				assert.Equal(t, "14:30", agendas[1].Events[0].Start)
			},
		},
		{
			name: "sessions query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT s.id`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name: "speakers query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT s.id`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(sessionCols))
				mock.ExpectQuery(`FROM speakers`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name: "no sessions",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT s.id`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(sessionCols))
				mock.ExpectQuery(`FROM speakers`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(speakerCols))
			},
			check: func(t *testing.T, agendas []domain.Agenda) {
				assert.Empty(t, agendas)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewProgramRepository(db, "ev-1")
			agendas, err := repo.Load(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, agendas)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgramRepository_Describe(t *testing.T) {
	assert.Equal(t, "postgres:event/ev-1", NewProgramRepository(nil, "ev-1").Describe())
}
