package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"unicode"

	"github.com/roach88/pval/internal/codec"
)

var (
	// ErrNotFound is returned when no measurement has the requested name.
	ErrNotFound = errors.New("measurement not found")

	// ErrInvalidName is returned for names that cannot be used as "$name"
	// variables in expressions.
	ErrInvalidName = errors.New("invalid measurement name")
)

// Measurement is a named, stored quantity.
type Measurement struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Record codec.Record `json:"record"`
	Digest string       `json:"digest"`
	Note   string       `json:"note,omitempty"`
	Seq    int64        `json:"seq"`
}

// ValidName reports whether name is a letter or '_' followed by letters,
// digits or '_'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Put stores rec under name, replacing any previous measurement of that
// name. A replaced measurement keeps its ID and gets a new seq.
func (s *Store) Put(ctx context.Context, name string, rec codec.Record, note string) (Measurement, error) {
	if !ValidName(name) {
		return Measurement{}, fmt.Errorf("put %q: %w", name, ErrInvalidName)
	}
	digest, err := codec.Digest(rec)
	if err != nil {
		return Measurement{}, fmt.Errorf("put %q: %w", name, err)
	}
	dimJSON, err := json.Marshal(rec.Dimension)
	if err != nil {
		return Measurement{}, fmt.Errorf("put %q: marshal dimension: %w", name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Measurement{}, fmt.Errorf("put %q: begin tx: %w", name, err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM measurements`).Scan(&seq); err != nil {
		return Measurement{}, fmt.Errorf("put %q: next seq: %w", name, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO measurements
		(id, name, domain, magnitude, dimension, digest, note, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			domain = excluded.domain,
			magnitude = excluded.magnitude,
			dimension = excluded.dimension,
			digest = excluded.digest,
			note = excluded.note,
			seq = excluded.seq
	`,
		s.ids.Generate(),
		name,
		rec.Domain,
		rec.Magnitude,
		string(dimJSON),
		digest,
		note,
		seq,
	)
	if err != nil {
		return Measurement{}, fmt.Errorf("put %q: %w", name, err)
	}

	m, err := scanMeasurement(tx.QueryRowContext(ctx, selectMeasurement+` WHERE name = ?`, name))
	if err != nil {
		return Measurement{}, fmt.Errorf("put %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return Measurement{}, fmt.Errorf("put %q: commit: %w", name, err)
	}
	return m, nil
}

// Get returns the measurement stored under name.
func (s *Store) Get(ctx context.Context, name string) (Measurement, error) {
	m, err := scanMeasurement(s.db.QueryRowContext(ctx, selectMeasurement+` WHERE name = ?`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return Measurement{}, fmt.Errorf("get %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Measurement{}, fmt.Errorf("get %q: %w", name, err)
	}
	return m, nil
}

// List returns measurements in the given number domain, or all of them when
// domain is empty, oldest write first.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) List(ctx context.Context, domain string) ([]Measurement, error) {
	rows, err := s.db.QueryContext(ctx, selectMeasurement+`
		WHERE ? = '' OR domain = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, domain, domain)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	return collect(rows)
}

// FindByDigest returns every measurement whose content digest is digest.
func (s *Store) FindByDigest(ctx context.Context, digest string) ([]Measurement, error) {
	rows, err := s.db.QueryContext(ctx, selectMeasurement+`
		WHERE digest = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, digest)
	if err != nil {
		return nil, fmt.Errorf("query measurements by digest: %w", err)
	}
	return collect(rows)
}

// Delete removes the measurement stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM measurements WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	return nil
}

const selectMeasurement = `
	SELECT id, name, domain, magnitude, dimension, digest, note, seq
	FROM measurements`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row rowScanner) (Measurement, error) {
	var (
		m       Measurement
		dimJSON string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Record.Domain, &m.Record.Magnitude, &dimJSON, &m.Digest, &m.Note, &m.Seq); err != nil {
		return Measurement{}, err
	}
	if err := json.Unmarshal([]byte(dimJSON), &m.Record.Dimension); err != nil {
		return Measurement{}, fmt.Errorf("unmarshal dimension of %q: %w", m.Name, err)
	}
	return m, nil
}

func collect(rows *sql.Rows) ([]Measurement, error) {
	defer rows.Close()

	out := []Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measurements: %w", err)
	}
	return out, nil
}
