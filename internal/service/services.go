package service

import (
	"github.com/MKhiriev/go-config-stamper/internal/config"
	"github.com/MKhiriev/go-config-stamper/internal/logger"
	"github.com/MKhiriev/go-config-stamper/internal/store"
	"github.com/MKhiriev/go-config-stamper/internal/utils"
	"github.com/MKhiriev/go-config-stamper/models"
)

type Services struct {
	StamperService StamperService
}

func NewServices(fileStore store.FileStore, cfg config.StructuredConfig, args models.Arguments, logger *logger.Logger) *Services {
	return &Services{
		StamperService: NewStamperService(fileStore, cfg.Stamp, args, utils.NewRunIDGenerator(), logger),
	}
}
