package shipping

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shipping/internal/config"
	"github.com/nao1215/shipping/internal/database"
	shippingdb "github.com/nao1215/shipping/internal/shipping/db"
	"github.com/nao1215/shipping/pkg/middleware"
)

// Server は配送方法一覧サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg はプロセス起動時に構築された設定。
	cfg *config.Config
	// db はデータベース接続プール。
	db *database.DB
	// queries はshipping/sversionテーブルのクエリ実行オブジェクト。
	queries *shippingdb.Queries
	// now は現在時刻を返す。テストで差し替える。
	now func() time.Time
}

// NewServer は新しい配送方法一覧サーバーを生成する。
// dbはマイグレーション済みであること。
func NewServer(cfg *config.Config, db *database.DB) *Server {
	registerJSONFieldNames()

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.TokenAuth(cfg.SecretKey))

	s := &Server{
		router:  router,
		cfg:     cfg,
		db:      db,
		queries: shippingdb.New(db, db.Dialect),
		now:     time.Now,
	}
	s.setupRoutes()

	return s
}

// Handler はHTTPハンドラーを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動し、ctxがキャンセルされるとグレースフルに停止する。
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTPサーバーが停止しました: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTPサーバーの停止に失敗: %w", err)
	}
	return <-errCh
}

// setupRoutes はAPIルーティングを設定する。
// 全てのルートはTokenAuthミドルウェアの後段で実行される。
func (s *Server) setupRoutes() {
	// 変更がある場合のみ一覧を返す
	s.router.POST("/", s.handleListIfChanged())
	// 配送方法の作成
	s.router.POST("/create", s.handleCreate())
}

// handleListIfChanged は一覧取得を処理するハンドラを返す。
// rfが現在のバージョン日時と一致する場合は空の一覧を返し、全件の読み出しを省略する。
func (s *Server) handleListIfChanged() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: toFieldErrors(err)})
			return
		}

		ctx := c.Request.Context()
		current, err := s.currentVersion(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "バージョンの取得に失敗しました"})
			log.Printf("バージョン取得エラー: request_id=%s: %v", middleware.GetRequestID(c), err)
			return
		}

		if !current.IsZero() && current.Datetime == *req.RF {
			c.JSON(http.StatusOK, ListResponse{Shipping: []Item{}, Version: current})
			return
		}

		rows, err := s.queries.ListShipping(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "配送方法一覧の取得に失敗しました"})
			log.Printf("配送方法一覧取得エラー: request_id=%s: %v", middleware.GetRequestID(c), err)
			return
		}

		items := make([]Item, 0, len(rows))
		for _, r := range rows {
			items = append(items, toItem(r))
		}

		c.JSON(http.StatusOK, ListResponse{Shipping: items, Version: current})
	}
}

// handleCreate は配送方法の作成を処理するハンドラを返す。
// 作成と同時に配送方法一覧のバージョン日時を進める。
func (s *Server) handleCreate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: toFieldErrors(err)})
			return
		}

		created, err := s.create(c.Request.Context(), shippingdb.CreateShippingParams{
			Type:     req.Type,
			Position: *req.Position,
			Title:    req.Title,
			Image:    req.Image,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "配送方法の作成に失敗しました"})
			log.Printf("配送方法作成エラー: request_id=%s: %v", middleware.GetRequestID(c), err)
			return
		}

		c.JSON(http.StatusOK, toItem(created))
	}
}

// currentVersion は配送方法一覧の現在のバージョンを返す。
// 行が存在しない場合はゼロ値を返す。
func (s *Server) currentVersion(ctx context.Context) (Version, error) {
	v, err := s.queries.GetSversion(ctx, CategoryShipping)
	if errors.Is(err, sql.ErrNoRows) {
		return Version{}, nil
	}
	if err != nil {
		return Version{}, err
	}
	return toVersion(v), nil
}

// create は配送方法の挿入とバージョン日時の更新を1つのトランザクションで行う。
// どちらかが失敗した場合は両方ともロールバックされる。
func (s *Server) create(ctx context.Context, arg shippingdb.CreateShippingParams) (shippingdb.Shipping, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return shippingdb.Shipping{}, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	qtx := s.queries.WithTx(tx)

	created, err := qtx.CreateShipping(ctx, arg)
	if err != nil {
		return shippingdb.Shipping{}, fmt.Errorf("配送方法の挿入に失敗: %w", err)
	}

	var prev *time.Time
	current, err := qtx.GetSversion(ctx, CategoryShipping)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return shippingdb.Shipping{}, fmt.Errorf("バージョンの取得に失敗: %w", err)
	default:
		prev = &current.Datetime
	}

	if _, err := qtx.UpsertSversion(ctx, shippingdb.UpsertSversionParams{
		Type:     CategoryShipping,
		Datetime: nextVersion(prev, s.now()),
	}); err != nil {
		return shippingdb.Shipping{}, fmt.Errorf("バージョンの更新に失敗: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return shippingdb.Shipping{}, fmt.Errorf("コミットに失敗: %w", err)
	}
	return created, nil
}
