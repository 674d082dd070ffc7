package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/config"
	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDatabase(t *testing.T) (*database.Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := database.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		config.DatabaseConfig{QueryTimeout: time.Second},
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("database.Open: %v", err)
	}
	return db, mock
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"":          "%%",
		"hop":       "%hop%",
		"50% off":   `%50\% off%`,
		"the_venue": `%the\_venue%`,
		`back\pack`: `%back\\pack%`,
	}
	for term, want := range tests {
		if got := containsPattern(term); got != want {
			t.Fatalf("containsPattern(%q) = %q, want %q", term, got, want)
		}
	}
}

func TestShowCreateMissingVenueRollsBack(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewShowRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Show{VenueID: 99, ArtistID: 1, Date: "2035-01-01T20:00:00Z"})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShowCreateMissingArtistRollsBack(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewShowRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Show{VenueID: 1, ArtistID: 42, Date: "2035-01-01T20:00:00Z"})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShowCreateCommits(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewShowRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "shows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	show := &models.Show{VenueID: 1, ArtistID: 4, Date: "2035-01-01T20:00:00Z"}
	if err := repo.Create(context.Background(), show); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if show.ID != 7 {
		t.Fatalf("expected show ID 7, got %d", show.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVenueCreateFailureRollsBack(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "venues"`).
		WillReturnError(errors.New("null value in column \"state\""))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Venue{Name: "The Hop", City: "San francisco"})
	if err == nil {
		t.Fatalf("expected insert error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVenueCreateCommits(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	venue := &models.Venue{Name: "The Hop", City: "San francisco", State: "CA", Genres: "Jazz,Folk"}
	if err := repo.Create(context.Background(), venue); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if venue.ID != 1 {
		t.Fatalf("expected venue ID 1, got %d", venue.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVenueSearchByNameEscapesTerm(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewVenueRepository(db)

	mock.ExpectQuery(`SELECT id, name FROM "venues" WHERE name ILIKE \$1 ORDER BY id ASC`).
		WithArgs(`%50\% off%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "50% Off Jazz Bar"))

	items, err := repo.SearchByName(context.Background(), "50% off")
	if err != nil {
		t.Fatalf("SearchByName error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 || items[0].Name != "50% Off Jazz Bar" {
		t.Fatalf("unexpected items %#v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArtistSearchByNameEmptyTermMatchesAll(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewArtistRepository(db)

	mock.ExpectQuery(`SELECT id, name FROM "artists" WHERE name ILIKE \$1 ORDER BY id ASC`).
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(4, "Guns N Petals").
			AddRow(5, "Matt Quevedo").
			AddRow(6, "The Wild Sax Band"))

	items, err := repo.SearchByName(context.Background(), "")
	if err != nil {
		t.Fatalf("SearchByName error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != 4 || items[2].ID != 6 {
		t.Fatalf("expected primary key order, got %#v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArtistFindByIDNotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewArtistRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE "artists"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.FindByID(context.Background(), 404)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShowCountByEntity(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewShowRepository(db)

	now := time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)
	stamp := "2030-06-15T12:00:00Z"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "shows" WHERE venue_id = \$1 AND "date" > \$2`).
		WithArgs(sqlmock.AnyArg(), stamp).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "shows" WHERE venue_id = \$1 AND "date" < \$2`).
		WithArgs(sqlmock.AnyArg(), stamp).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	counts, err := repo.CountByEntity(context.Background(), models.RoleVenue, 3, now)
	if err != nil {
		t.Fatalf("CountByEntity error: %v", err)
	}
	if counts.Upcoming != 2 || counts.Past != 5 {
		t.Fatalf("unexpected counts %#v", counts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShowCountByEntityRejectsUnknownRole(t *testing.T) {
	db, _ := newMockDatabase(t)
	repo := NewShowRepository(db)

	if _, err := repo.CountByEntity(context.Background(), models.ShowRole("promoter"), 1, time.Now()); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
