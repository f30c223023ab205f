package handlers

import (
	"kidney-care-ai/app/server/classifier"
	"kidney-care-ai/app/server/mailer"
	"kidney-care-ai/app/server/sessions"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l        *zap.Logger
	db       *gorm.DB
	sessions sessions.Store    // session store, Redis in production
	model    *classifier.Model // pre-trained CKD classifier, read-only
	mail     mailer.Mailer     // inquiry reply notifications
}

func NewApp(l *zap.Logger, db *gorm.DB, store sessions.Store, model *classifier.Model, mail mailer.Mailer) *App {
	return &App{
		l:        l,
		db:       db,
		sessions: store,
		model:    model,
		mail:     mail,
	}
}
