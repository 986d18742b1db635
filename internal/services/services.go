package services

import (
	"github.com/abeheron1/mock-data-holder/internal/config"
	"github.com/abeheron1/mock-data-holder/internal/repositories"

	"go.uber.org/zap"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	resourceRepo repositories.ResourceRepository

	logger *zap.Logger

	common service

	Customer *customer
	Banking  *banking
}

func New(
	conf config.Config,
	resourceRepo repositories.ResourceRepository,
	logger *zap.Logger,
) *Services {
	srv := &Services{
		conf:         conf,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
	srv.common.srv = srv
	srv.Customer = (*customer)(&srv.common)
	srv.Banking = (*banking)(&srv.common)

	return srv
}
