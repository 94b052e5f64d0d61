package shipping

import (
	"fmt"
	"time"
)

// versionLayout はマイクロ秒を除いたバージョン日時の書式。
const versionLayout = "2006-01-02T15:04:05"

// FormatVersion はバージョン日時をクライアントと比較する文字列に変換する。
// UTCのISO-8601形式で、マイクロ秒が0でない場合のみ ".ffffff" を付ける。
// タイムゾーン表記は付けないため、最大26文字になる。
func FormatVersion(t time.Time) string {
	t = t.UTC()
	s := t.Format(versionLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

// nextVersion は新しいバージョン日時を返す。
// DBの精度に合わせてマイクロ秒に切り詰め、前回以前の時刻にはならないよう
// 必要なら前回より1マイクロ秒進める。
func nextVersion(prev *time.Time, now time.Time) time.Time {
	next := now.UTC().Truncate(time.Microsecond)
	if prev != nil && !next.After(*prev) {
		next = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return next
}
