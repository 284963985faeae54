// Package main はAPIサーバーのエントリーポイントです。
package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/book-reviews/internal/auth"
	"github.com/yourusername/book-reviews/internal/catalog"
	"github.com/yourusername/book-reviews/internal/config"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ginのモードを設定
	gin.SetMode(cfg.GinMode)

	// Ginルーターの初期化（デフォルトミドルウェア: Logger, Recovery）
	router := gin.Default()

	// セッションストアの設定
	// トークンはサーバー側に保持し、クッキーには不透明なセッションIDのみを載せる
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   auth.SessionMaxAgeSeconds(cfg),
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteStrictMode,
	})
	router.Use(sessions.Sessions(auth.SessionCookieName, store))

	// CORSミドルウェアの設定
	corsConfig := cors.DefaultConfig()
	// CORS許可オリジンを設定（カンマ区切りの文字列を配列に変換）
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
	}
	router.Use(cors.New(corsConfig))

	// リクエストIDミドルウェア
	router.Use(requestID())

	// ルーティングの設定
	setupRoutes(router, cfg)

	// サーバーの起動
	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s (mode: %s)", addr, cfg.GinMode)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// handleHealth はヘルスチェックエンドポイントのハンドラーです。
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "book-reviews-api",
		"version": "0.1.0",
	})
}

// requestID は各リクエストに X-Request-Id を付与するミドルウェアを返します。
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// setupRoutes はストアの生成と認証周りの配線を行います。
func setupRoutes(router *gin.Engine, cfg *config.Config) {
	// まずは誰でも叩けるヘルスチェックを登録
	router.GET("/health", handleHealth)

	users := auth.NewCredentialStore()
	tokens := auth.NewTokenService(cfg.TokenSecret, time.Duration(cfg.TokenTTL)*time.Second)
	authManager := auth.NewManager(cfg, users, tokens)

	books := catalog.NewStore(catalog.Seed())

	// 公開ルート
	router.POST("/register", authManager.Register)
	router.POST("/login", authManager.Login)
	router.GET("/", catalog.ListHandler(books))
	router.GET("/isbn/:isbn", catalog.ISBNHandler(books))
	router.GET("/author/:author", catalog.AuthorHandler(books))
	router.GET("/title/:title", catalog.TitleHandler(books))
	router.GET("/review/:isbn", catalog.ReviewsHandler(books))

	customer := router.Group("/customer")
	{
		customer.POST("/login", authManager.Login)
		customer.POST("/logout",
			authManager.RequireToken(),
			authManager.Logout,
		)

		// トークン必須のレビュー操作
		protected := customer.Group("/auth")
		protected.Use(authManager.RequireToken())
		{
			protected.PUT("/review/:isbn", catalog.UpsertReviewHandler(books))
			protected.DELETE("/review/:isbn", catalog.DeleteReviewHandler(books))
		}
	}
}
