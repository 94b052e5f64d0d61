// 配送方法一覧サービスのエントリポイント。
// 共有シークレットで保護された2つのAPI（一覧取得と作成）を提供する。
// 設定は .env ファイルと環境変数から読み込む。
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/shipping/internal/config"
	"github.com/nao1215/shipping/internal/database"
	"github.com/nao1215/shipping/internal/shipping"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("配送方法一覧サービスの起動に失敗: %v", err)
	}
}

func run() error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if cfg.SecretKey == config.DefaultSecretKey {
		log.Printf("SECRET_KEYが既定値のままです。本番環境では必ず変更してください")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("データベース接続のクローズに失敗: %v", err)
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	server := shipping.NewServer(cfg, db)

	log.Printf("配送方法一覧サービスを起動します: %s (database=%s)", cfg.Addr(), db.Dialect)
	if err := server.Run(ctx); err != nil {
		return err
	}
	log.Printf("配送方法一覧サービスを停止しました")
	return nil
}
