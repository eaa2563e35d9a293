package service

import (
	"github.com/Nishaantmazarallo/Mini-project/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Admin *AdminService
	Stats *StatsService
}

func NewService(logger *zerolog.Logger, repos *repository.Repositories) *Services {
	return &Services{
		Admin: NewAdminService(logger, repos.Users),
		Stats: NewStatsService(repos),
	}
}
