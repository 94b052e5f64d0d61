package db

import (
	"fmt"
	"time"
)

// Shipping はshippingテーブルの1行。
type Shipping struct {
	ID       int64
	Type     string
	Position int64
	Title    string
	Image    string
}

// Sversion はsversionテーブルの1行。カテゴリごとの変更ウォーターマーク。
type Sversion struct {
	ID       int64
	Type     string
	Datetime time.Time
}

// timestampLayouts はドライバが文字列で返す日時の書式。
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// timestamp はtime.Timeと文字列のどちらで返る日時も読み取れるScanner。
// SQLiteのDATETIME列は書き込み元によって文字列のまま返ることがある。
type timestamp struct {
	t *time.Time
}

// Scan はsql.Scannerを実装する。
func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("日時に変換できない型です: %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("日時の書式が不正です: %q", s)
}
