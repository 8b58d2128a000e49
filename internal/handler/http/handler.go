package http

import (
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/security"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
)

type Handler struct {
	services *service.Services

	userValidator    validators.Validator
	productValidator validators.Validator

	limiter    *security.Limiter
	blocklist  *security.Blocklist
	inspector  *security.Inspector
	events     *security.Events
	trustProxy bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, sec SecurityComponents, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		userValidator:    validators.NewUserValidator(),
		productValidator: validators.NewProductValidator(),
		limiter:          sec.Limiter,
		blocklist:        sec.Blocklist,
		inspector:        sec.Inspector,
		events:           sec.Events,
		trustProxy:       sec.TrustProxyHeader,
		logger:           logger,
	}
}

// SecurityComponents bundles the request-screening collaborators injected
// into the handler so the constructor signature stays flat.
type SecurityComponents struct {
	Limiter   *security.Limiter
	Blocklist *security.Blocklist
	Inspector *security.Inspector
	Events    *security.Events

	// TrustProxyHeader keys client identification on X-Forwarded-For.
	// Only safe behind a proxy that overwrites the header.
	TrustProxyHeader bool
}
