// Package cli はshippingctlのサブコマンドを定義する。
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/shipping/internal/shipping"
	"github.com/nao1215/shipping/pkg/httpclient"
	"github.com/spf13/cobra"
)

// globalFlags は全サブコマンド共通のフラグ。
type globalFlags struct {
	url       string
	token     string
	requestID string
}

// requestContext はX-Request-IDを設定したコンテキストを返す。
func (g *globalFlags) requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if g.requestID != "" {
		ctx = httpclient.WithRequestID(ctx, g.requestID)
	}
	return ctx
}

// NewRootCommand はshippingctlのルートコマンドを生成する。
// --url と --token の既定値は環境変数 SHIPPING_URL と SECRET_KEY から取る。
func NewRootCommand(out io.Writer) *cobra.Command {
	var globals globalFlags

	cmd := &cobra.Command{
		Use:           "shippingctl",
		Short:         "配送方法一覧サービスのクライアント",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().StringVar(&globals.url, "url", envOr("SHIPPING_URL", "http://localhost:8000"), "サービスのベースURL")
	cmd.PersistentFlags().StringVar(&globals.token, "token", os.Getenv("SECRET_KEY"), "共有シークレット")
	cmd.PersistentFlags().StringVar(&globals.requestID, "request-id", "", "X-Request-IDとして送信する値")

	cmd.AddCommand(newListCommand(out, &globals))
	cmd.AddCommand(newCreateCommand(out, &globals))
	return cmd
}

func newListCommand(out io.Writer, globals *globalFlags) *cobra.Command {
	var rf string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "配送方法一覧を取得する（rfが最新なら空の一覧）",
		Example: "  shippingctl list\n" +
			"  shippingctl list --rf 2024-05-01T10:00:00.123456",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := shipping.NewClient(globals.url, globals.token)
			resp, err := client.ListIfChanged(globals.requestContext(cmd), rf)
			if err != nil {
				return reportError(out, err)
			}
			return printJSON(out, resp)
		},
	}

	cmd.Flags().StringVar(&rf, "rf", "", "最後に受け取ったバージョン日時")
	return cmd
}

func newCreateCommand(out io.Writer, globals *globalFlags) *cobra.Command {
	var (
		req      shipping.CreateRequest
		position int64
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "配送方法を作成する",
		Example: `  shippingctl create --type air --title "Air Freight" --position 1 --image air.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("position") {
				req.Position = &position
			}
			client := shipping.NewClient(globals.url, globals.token)
			item, err := client.Create(globals.requestContext(cmd), req)
			if err != nil {
				return reportError(out, err)
			}
			return printJSON(out, item)
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "", "配送方法の種別")
	cmd.Flags().StringVar(&req.Title, "title", "", "表示名")
	cmd.Flags().Int64Var(&position, "position", 0, "表示順")
	cmd.Flags().StringVar(&req.Image, "image", "", "画像のパスまたはURL")
	return cmd
}

// reportError はサーバーが返したエラーボディを出力してからエラーを返す。
func reportError(out io.Writer, err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && json.Valid(statusErr.Body) {
		var body any
		if json.Unmarshal(statusErr.Body, &body) == nil {
			_ = printJSON(out, body)
		}
		return fmt.Errorf("サーバーがステータス %d を返しました", statusErr.StatusCode)
	}
	return err
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
