// Package impl stores documents as JSON objects in a SQLite table.
package impl

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/rs/zerolog/log"
)

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type dbImpl struct {
	db  *sql.DB
	now func() time.Time
}

func New(d *sql.DB) db.DB {
	return &dbImpl{
		db:  d,
		now: time.Now,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return db.ErrNotFound
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrInvalidQuery):
		return err
	default:
		log.Error().Err(err).Msg("document store error")
		return fmt.Errorf("%w: %s", db.ErrInternal, err)
	}
}

func (d *dbImpl) WithTx(ctx context.Context, f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
			err = d.HandleError(err)
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}

func (d *dbImpl) Get(ctx context.Context, collection db.Collection, id string) (db.Document, error) {
	var raw string
	err := d.db.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?",
		string(collection), id,
	).Scan(&raw)
	if err != nil {
		return db.Document{}, d.HandleError(err)
	}

	data, err := unmarshal(raw)
	if err != nil {
		return db.Document{}, d.HandleError(err)
	}
	return db.Document{ID: id, Data: data}, nil
}

func (d *dbImpl) GetAll(ctx context.Context, collection db.Collection, q *db.Query) ([]db.Document, error) {
	query := "SELECT id, data FROM documents WHERE collection = ?"
	args := []any{string(collection)}

	if q != nil && q.OrderBy != "" {
		if !fieldName.MatchString(q.OrderBy) {
			return nil, fmt.Errorf("%w: cannot order by %q", db.ErrInvalidQuery, q.OrderBy)
		}
		path := "$." + q.OrderBy
		dir := "ASC"
		if q.Direction == db.Desc {
			dir = "DESC"
		}
		query += " AND json_type(data, ?) IS NOT NULL AND json_type(data, ?) != 'null'" +
			" ORDER BY json_extract(data, ?) " + dir + ", created ASC"
		args = append(args, path, path, path)
	} else {
		query += " ORDER BY id"
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	docs := []db.Document{}
	for rows.Next() {
		var id, raw string
		if err = rows.Scan(&id, &raw); err != nil {
			return nil, d.HandleError(err)
		}
		data, err := unmarshal(raw)
		if err != nil {
			return nil, d.HandleError(err)
		}
		docs = append(docs, db.Document{ID: id, Data: data})
	}

	return docs, d.HandleError(rows.Err())
}

func (d *dbImpl) SetMerge(ctx context.Context, collection db.Collection, id string, data map[string]any) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		current, err := getTx(ctx, tx, collection, id)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		merged, err := json.Marshal(db.Merge(current, data))
		if err != nil {
			return err
		}

		now := d.now().Unix()
		_, err = tx.ExecContext(ctx, `INSERT INTO documents(collection, id, data, created, updated)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(collection, id) DO UPDATE SET data = excluded.data, updated = excluded.updated`,
			string(collection), id, string(merged), now, now)
		return err
	})
}

func (d *dbImpl) Update(ctx context.Context, collection db.Collection, id string, data map[string]any) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		current, err := getTx(ctx, tx, collection, id)
		if err != nil {
			return err
		}

		for k, v := range data {
			current[k] = v
		}
		updated, err := json.Marshal(current)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE documents SET data = ?, updated = ? WHERE collection = ? AND id = ?",
			string(updated), d.now().Unix(), string(collection), id)
		return err
	})
}

func (d *dbImpl) Add(ctx context.Context, collection db.Collection, data map[string]any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	now := d.now().Unix()
	_, err = d.db.ExecContext(ctx,
		"INSERT INTO documents(collection, id, data, created, updated) VALUES (?, ?, ?, ?, ?)",
		string(collection), id, string(raw), now, now)
	if err != nil {
		return "", d.HandleError(err)
	}

	log.Debug().Str("collection", string(collection)).Str("id", id).Msg("document added")
	return id, nil
}

func (d *dbImpl) Delete(ctx context.Context, collection db.Collection, id string) error {
	_, err := d.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		string(collection), id)
	return d.HandleError(err)
}

func getTx(ctx context.Context, tx *sql.Tx, collection db.Collection, id string) (map[string]any, error) {
	var raw string
	err := tx.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?",
		string(collection), id,
	).Scan(&raw)
	if err != nil {
		return nil, err
	}
	return unmarshal(raw)
}

func unmarshal(raw string) (map[string]any, error) {
	data := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("corrupted document: %w", err)
	}
	return data, nil
}
