// Package store persists contacts in MySQL. Every statement that addresses a
// contact by id also filters on the owner column, so a caller can never read
// or write another user's records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/tomas.hradek/address-book/internal/config"
	"gitlab.com/tomas.hradek/address-book/internal/model"
)

// ErrNotFound is returned when no contact matches the given id and owner.
var ErrNotFound = errors.New("contact not found")

// ListQuery restricts and pages the result of List. Owner is always set;
// Favorite is applied only when non-nil.
type ListQuery struct {
	Owner    string
	Favorite *bool
	Limit    int
	Offset   int
}

// Store gives owner-scoped access to the contacts table.
type Store struct {
	db          *sqlx.DB
	insert      *sqlx.NamedStmt
	selectByID  *sqlx.Stmt
	deleteByID  *sqlx.Stmt
	replaceByID *sqlx.Stmt
	setFavorite *sqlx.Stmt
}

// Open connects to the MySQL database described by the configuration.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return sqlDB, nil
}

// New wraps the sql database in the sqlx layer and prepares the statements
// for the hot paths. The database argument can be a real connection for
// production use or a mock database within unit tests.
func New(sqlDB *sql.DB) (*Store, error) {
	s := &Store{db: sqlx.NewDb(sqlDB, "mysql")}

	// Prepared statements offer a significant speed increase if executed many times.
	var err error
	if s.insert, err = s.db.PrepareNamed(`
		INSERT INTO contacts (id, name, email, phone, favorite, owner)
		VALUES (:id, :name, :email, :phone, :favorite, :owner)
	`); err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	if s.selectByID, err = s.db.Preparex(`
		SELECT id, name, email, phone, favorite, owner
		FROM contacts
		WHERE id=? AND owner=?
	`); err != nil {
		return nil, fmt.Errorf("prepare select: %w", err)
	}
	if s.deleteByID, err = s.db.Preparex(`
		DELETE FROM contacts WHERE id=? AND owner=?
	`); err != nil {
		return nil, fmt.Errorf("prepare delete: %w", err)
	}
	if s.replaceByID, err = s.db.Preparex(`
		UPDATE contacts SET name=?, email=?, phone=?, favorite=? WHERE id=? AND owner=?
	`); err != nil {
		return nil, fmt.Errorf("prepare update: %w", err)
	}
	if s.setFavorite, err = s.db.Preparex(`
		UPDATE contacts SET favorite=? WHERE id=? AND owner=?
	`); err != nil {
		return nil, fmt.Errorf("prepare favorite update: %w", err)
	}
	return s, nil
}

// List returns the caller's contacts in insertion order, at most Limit of
// them, starting at Offset. An empty result is not an error.
func (s *Store) List(ctx context.Context, q ListQuery) ([]model.Contact, error) {
	contacts := []model.Contact{}
	var err error
	if q.Favorite != nil {
		err = s.db.SelectContext(ctx, &contacts, `
			SELECT id, name, email, phone, favorite, owner
			FROM contacts
			WHERE owner=? AND favorite=?
			ORDER BY created_at, id
			LIMIT ? OFFSET ?`,
			q.Owner, *q.Favorite, q.Limit, q.Offset)
	} else {
		err = s.db.SelectContext(ctx, &contacts, `
			SELECT id, name, email, phone, favorite, owner
			FROM contacts
			WHERE owner=?
			ORDER BY created_at, id
			LIMIT ? OFFSET ?`,
			q.Owner, q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	return contacts, nil
}

// GetByID returns the caller's contact with the given id.
func (s *Store) GetByID(ctx context.Context, id, owner string) (model.Contact, error) {
	var contact model.Contact
	err := s.selectByID.GetContext(ctx, &contact, id, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Contact{}, ErrNotFound
	}
	if err != nil {
		return model.Contact{}, fmt.Errorf("select contact: %w", err)
	}
	return contact, nil
}

// Create assigns an id, stamps the owner onto the record and persists it.
// The stored record is returned including the server-assigned fields.
func (s *Store) Create(ctx context.Context, in model.ContactInput, owner string) (model.Contact, error) {
	contact := model.Contact{
		Id:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Favorite: in.IsFavorite(),
		Owner:    owner,
	}
	if _, err := s.insert.ExecContext(ctx, contact); err != nil {
		return model.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	return contact, nil
}

// DeleteByID removes the caller's contact with the given id. The single
// DELETE statement makes the find-and-remove atomic.
func (s *Store) DeleteByID(ctx context.Context, id, owner string) error {
	result, err := s.deleteByID.ExecContext(ctx, id, owner)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateByID replaces all caller-editable fields of the contact in one
// statement and returns the record after the update.
func (s *Store) UpdateByID(ctx context.Context, id, owner string, in model.ContactInput) (model.Contact, error) {
	_, err := s.replaceByID.ExecContext(ctx, in.Name, in.Email, in.Phone, in.IsFavorite(), id, owner)
	if err != nil {
		return model.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	// RowsAffected is 0 both for a missing record and for an update that
	// changed nothing, so the follow-up select decides between 200 and 404.
	return s.GetByID(ctx, id, owner)
}

// UpdateFavorite sets exactly the favorite field of the contact and returns
// the record after the update.
func (s *Store) UpdateFavorite(ctx context.Context, id, owner string, favorite bool) (model.Contact, error) {
	if _, err := s.setFavorite.ExecContext(ctx, favorite, id, owner); err != nil {
		return model.Contact{}, fmt.Errorf("update favorite: %w", err)
	}
	return s.GetByID(ctx, id, owner)
}
