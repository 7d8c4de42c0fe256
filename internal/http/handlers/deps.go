package handlers

import (
	"time"

	"balcao/internal/chat"
	"balcao/internal/config"
	"balcao/internal/repos"
	"balcao/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler   *AuthHandler
	ChatHandler   *ChatHandler
	StockHandler  *StockHandler
	AdminHandler  *AdminHandler
	ReportHandler *ReportHandler

	Auth *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config, hub *chat.Hub) *Deps {
	userRepo := repos.NewUserRepo(db)
	stockRepo := repos.NewStockRepo(db)
	msgRepo := repos.NewMessageRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	authSvc := &services.AuthService{Users: userRepo}
	stockSvc := services.NewStockService(stockRepo, saleRepo, cfg.AllowNegativeStock)
	chatSvc := services.NewChatService(msgRepo, hub, time.Duration(cfg.RetentionHours)*time.Hour)
	reportSvc := services.NewReportService(saleRepo)

	return &Deps{
		AuthHandler:   &AuthHandler{Auth: authSvc},
		ChatHandler:   &ChatHandler{Chat: chatSvc, Auth: authSvc, AllowAnon: cfg.AllowAnonChat},
		StockHandler:  &StockHandler{Stock: stockSvc},
		AdminHandler:  &AdminHandler{Stock: stockSvc, Report: reportSvc, Messages: msgRepo},
		ReportHandler: &ReportHandler{Report: reportSvc},
		Auth:          authSvc,
	}
}
