package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/internal/interface/middleware"
	"github.com/Hiro-mackay/timeserver/internal/interface/validator"
)

// Config はサーバー設定を定義します
type Config struct {
	Host            string        // ホスト (default: "")
	Port            int           // ポート (default: 8080)
	ReadTimeout     time.Duration // 読み取りタイムアウト (default: 10s)
	WriteTimeout    time.Duration // 書き込みタイムアウト (default: 10s)
	ShutdownTimeout time.Duration // シャットダウンタイムアウト (default: 10s)
	Debug           bool          // デバッグモード
}

// DefaultConfig はデフォルト設定を返します
func DefaultConfig() Config {
	return Config{
		Host:            "",
		Port:            8080,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Debug:           false,
	}
}

// Server はHTTPサーバーを提供します
type Server struct {
	echo   *echo.Echo
	config Config
}

// NewServer は新しいServerを作成します
// バリデーターとエラーハンドラーは設定済みの状態で返します
func NewServer(cfg Config) *Server {
	return &Server{
		echo:   NewEcho(cfg.Debug),
		config: cfg,
	}
}

// NewEcho はアプリケーション共通設定済みのecho.Echoを作成します
func NewEcho(debug bool) *echo.Echo {
	e := echo.New()

	// 基本設定
	e.Debug = debug
	e.HideBanner = true
	e.HidePort = true

	e.Validator = validator.NewCustomValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	return e
}

// Echo は内部のecho.Echoを返します
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Config は設定を返します
func (s *Server) Config() Config {
	return s.config
}

// Start はサーバーを開始します
func (s *Server) Start() error {
	s.echo.Server.ReadTimeout = s.config.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.WriteTimeout
	return s.echo.Start(s.Address())
}

// Shutdown はサーバーを停止します
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

// Address はサーバーのアドレスを返します
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
