// Package session persists the logged-in state of the client: the token
// handed out on login and the user view that came with it. Both live in a
// local SQLite file so a restarted client stays logged in.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/client/session/migrations"
	"github.com/dmitrijs2005/accountdesk/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Session is what a successful login leaves behind.
type Session struct {
	Token string
	User  api.User
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RunMigrations brings the session schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the session database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session db migrations: %w", err)
	}

	return NewStore(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored session. Token and user are written together.
func (s *Store) Save(ctx context.Context, sess Session) error {
	user, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, userKey, user)
	})
}

// Load returns the stored session, or nil when nobody is logged in. A half
// written session counts as logged out.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	repo := NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	user, err := repo.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || user == nil {
		return nil, nil
	}

	sess := &Session{Token: string(token)}
	if err := json.Unmarshal(user, &sess.User); err != nil {
		return nil, fmt.Errorf("stored user is corrupt: %w", err)
	}

	return sess, nil
}

// Clear removes the stored session.
func (s *Store) Clear(ctx context.Context) error {
	return NewSQLiteRepository(s.db).Clear(ctx)
}
