package middleware

import (
	"github.com/Temutjin2k/lapla/pkg/logger"
)

type Middleware struct {
	log logger.Logger
}

func NewMiddleware(log logger.Logger) *Middleware {
	return &Middleware{
		log: log,
	}
}
