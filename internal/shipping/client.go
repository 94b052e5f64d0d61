package shipping

import (
	"context"
	"fmt"

	"github.com/nao1215/shipping/pkg/httpclient"
)

// Client は配送方法一覧サービスのAPIクライアント。
type Client struct {
	http *httpclient.Client
}

// NewClient は新しいAPIクライアントを生成する。
// tokenにはサーバーのSECRET_KEYと同じ値を指定する。
func NewClient(baseURL, token string) *Client {
	return &Client{http: httpclient.New(baseURL, token)}
}

// ListIfChanged は一覧を取得する。rfが現在のバージョンと一致する場合、
// Shippingは空になる。初回はrfに空文字列を指定する。
func (c *Client) ListIfChanged(ctx context.Context, rf string) (*ListResponse, error) {
	var resp ListResponse
	if err := c.http.PostJSON(ctx, "/", ListRequest{RF: &rf}, &resp); err != nil {
		return nil, fmt.Errorf("一覧の取得に失敗: %w", err)
	}
	return &resp, nil
}

// Create は配送方法を作成し、採番されたIDを含む結果を返す。
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	var item Item
	if err := c.http.PostJSON(ctx, "/create", req, &item); err != nil {
		return nil, fmt.Errorf("配送方法の作成に失敗: %w", err)
	}
	return &item, nil
}
