// Package postgres inserts combinations into a table, one row each.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/combigen/combigen/internal/cartesian"
	"github.com/combigen/combigen/internal/perf"
	"github.com/jackc/pgx/v5"
)

// Connect dials Postgres, retrying transient failures with backoff.
func Connect(ctx context.Context, dsn string) (conn *pgx.Conn, err error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return
	}
	slog.Debug("Opening Postgres connection.", "db", config.Database)
	err = retry.Do(
		func() error {
			conn, err = pgx.ConnectConfig(ctx, config)
			return err
		},
		retry.Context(ctx),
		retry.OnRetry(logRetryError),
		retry.MaxDelay(30*time.Second),
		retry.LastErrorOnly(true),
	)
	return
}

// Implements retry.OnRetryFunc
func logRetryError(n uint, err error) {
	slog.Debug("Retrying.", "err", err.Error(), "attempt", n)
}

// InsertSQL builds the parametrized insert for one combination row.
func InsertSQL(table string, columns []string) string {
	idents := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, column := range columns {
		idents[i] = pgx.Identifier{column}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(idents, ", "),
		strings.Join(placeholders, ", "),
	)
}

// Sink writes combinations to a table. A nil connection puts the sink in
// dry mode: rows are logged, Postgres is untouched.
type Sink struct {
	conn  *pgx.Conn
	sql   string
	watch *perf.StopWatch
}

func NewSink(conn *pgx.Conn, table string, columns []string, watch *perf.StopWatch) *Sink {
	return &Sink{
		conn:  conn,
		sql:   InsertSQL(table, columns),
		watch: watch,
	}
}

func (s *Sink) Write(ctx context.Context, values []any) (err error) {
	if s.conn == nil {
		slog.Info("Would insert.", "sql", s.sql, "values", values)
		return
	}
	s.watch.TimeIt(func() {
		_, err = s.conn.Exec(ctx, s.sql, values...)
	})
	return
}

// Insert drains the product into the sink. limit caps the number of rows,
// 0 means all of them.
func (s *Sink) Insert(ctx context.Context, product *cartesian.Product, limit int) (count uint64, err error) {
	for {
		if 0 < limit && count >= uint64(limit) {
			return
		}
		combination, ok := product.Next()
		if !ok {
			return
		}
		values, err := cartesian.AllRemaining[any](combination)
		if err != nil {
			return count, err
		}
		err = s.Write(ctx, values)
		if err != nil {
			return count, fmt.Errorf("insert: %w", err)
		}
		count++
	}
}
