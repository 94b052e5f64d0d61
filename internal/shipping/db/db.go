// Package db はshippingテーブルとsversionテーブルに対するクエリを提供する。
// sqlcと同じ形のAPI（Queries, New, WithTx）を持ち、SQLiteとPostgreSQLの
// 両方の方言に対応する。
package db

import (
	"context"
	"database/sql"

	"github.com/nao1215/shipping/internal/database"
)

// DBTX は*sql.DBと*sql.Txの共通インターフェース。
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New は新しいQueriesを生成する。
func New(db DBTX, dialect database.Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

// Queries はクエリ実行オブジェクト。
type Queries struct {
	db      DBTX
	dialect database.Dialect
}

// WithTx はトランザクション上でクエリを実行するQueriesを返す。
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, dialect: q.dialect}
}

func (q *Queries) rebind(query string) string {
	return database.Rebind(q.dialect, query)
}
