package db

import (
	"context"
	"time"
)

const createShipping = `
INSERT INTO shipping (type, position, title, image)
VALUES (?, ?, ?, ?)
RETURNING id, type, position, title, image
`

// CreateShippingParams はCreateShippingの引数。
type CreateShippingParams struct {
	Type     string
	Position int64
	Title    string
	Image    string
}

// CreateShipping は配送方法を1件挿入し、採番されたIDを含む行を返す。
func (q *Queries) CreateShipping(ctx context.Context, arg CreateShippingParams) (Shipping, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(createShipping),
		arg.Type,
		arg.Position,
		arg.Title,
		arg.Image,
	)
	var i Shipping
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.Position,
		&i.Title,
		&i.Image,
	)
	return i, err
}

const listShipping = `
SELECT id, type, position, title, image
FROM shipping
ORDER BY id
`

// ListShipping は全ての配送方法をID順に返す。
func (q *Queries) ListShipping(ctx context.Context) ([]Shipping, error) {
	rows, err := q.db.QueryContext(ctx, listShipping)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Shipping
	for rows.Next() {
		var i Shipping
		if err := rows.Scan(
			&i.ID,
			&i.Type,
			&i.Position,
			&i.Title,
			&i.Image,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSversion = `
SELECT id, type, datetime
FROM sversion
WHERE type = ?
ORDER BY id
LIMIT 1
`

// GetSversion はカテゴリのバージョン行を返す。存在しない場合はsql.ErrNoRows。
func (q *Queries) GetSversion(ctx context.Context, typ string) (Sversion, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(getSversion), typ)
	var i Sversion
	err := row.Scan(&i.ID, &i.Type, timestamp{&i.Datetime})
	return i, err
}

const upsertSversion = `
INSERT INTO sversion (type, datetime)
VALUES (?, ?)
ON CONFLICT (type) DO UPDATE SET datetime = excluded.datetime
RETURNING id, type, datetime
`

// UpsertSversionParams はUpsertSversionの引数。
type UpsertSversionParams struct {
	Type     string
	Datetime time.Time
}

// UpsertSversion はカテゴリのバージョン日時を更新する。行が無ければ挿入する。
// idx_sversion_type の一意制約により、同時実行されても行は1つに保たれる。
func (q *Queries) UpsertSversion(ctx context.Context, arg UpsertSversionParams) (Sversion, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(upsertSversion), arg.Type, arg.Datetime)
	var i Sversion
	err := row.Scan(&i.ID, &i.Type, timestamp{&i.Datetime})
	return i, err
}
