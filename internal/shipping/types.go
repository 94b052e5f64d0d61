package shipping

import (
	shippingdb "github.com/nao1215/shipping/internal/shipping/db"
)

// CategoryShipping は配送方法一覧のバージョン管理に使うカテゴリキー。
const CategoryShipping = "shipping"

// ListRequest は一覧取得リクエストのJSON構造。
type ListRequest struct {
	// RF はクライアントが最後に受け取ったバージョン日時。未取得の場合は空文字列。
	RF *string `json:"rf" binding:"required,max=26"`
}

// CreateRequest は配送方法作成リクエストのJSON構造。
type CreateRequest struct {
	// Type は配送方法の種別。
	Type string `json:"type" binding:"required,min=2"`
	// Title は表示名。
	Title string `json:"title" binding:"required,min=2"`
	// Position は表示順。0も有効な値のためポインタで受け取る。
	Position *int64 `json:"position" binding:"required"`
	// Image は画像のパスまたはURL。
	Image string `json:"image" binding:"required,min=2"`
}

// Item は配送方法のJSONレスポンス構造。
type Item struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Position int64  `json:"position"`
	Image    string `json:"image"`
	Title    string `json:"title"`
}

// Version はバージョン行のJSONレスポンス構造。
// 行が存在しない場合はゼロ値となり、{} としてシリアライズされる。
type Version struct {
	ID       int64  `json:"id,omitempty"`
	Type     string `json:"type,omitempty"`
	Datetime string `json:"datetime,omitempty"`
}

// IsZero はバージョン行が存在しないことを表すゼロ値かを返す。
func (v Version) IsZero() bool {
	return v == Version{}
}

// ListResponse は一覧取得のJSONレスポンス構造。
type ListResponse struct {
	// Shipping は配送方法の一覧。変更が無い場合は空。
	Shipping []Item `json:"shipping"`
	// Version は現在のバージョン。
	Version Version `json:"version"`
}

// toItem はDB行をJSONレスポンスに変換する。
func toItem(s shippingdb.Shipping) Item {
	return Item{
		ID:       s.ID,
		Type:     s.Type,
		Position: s.Position,
		Image:    s.Image,
		Title:    s.Title,
	}
}

// toVersion はDB行をJSONレスポンスに変換する。
func toVersion(v shippingdb.Sversion) Version {
	return Version{
		ID:       v.ID,
		Type:     v.Type,
		Datetime: FormatVersion(v.Datetime),
	}
}
