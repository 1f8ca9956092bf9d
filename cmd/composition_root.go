package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/carrier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// defaultAggregatorBaseURL is the production aggregator endpoint. The auth
// diagnostic probes it alongside the configured one so a misconfigured base
// URL is distinguishable from bad credentials.
const defaultAggregatorBaseURL = "https://apiv2.shiprocket.in"

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	gateway       ports.CarrierGateway
	probeGateways []ports.CarrierGateway
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	timeout := time.Duration(0)
	if config.CarrierTimeoutSeconds != "" {
		seconds, err := strconv.Atoi(config.CarrierTimeoutSeconds)
		if err != nil {
			return CompositionRoot{}, err
		}
		timeout = time.Duration(seconds) * time.Second
	}

	gateway, err := carrier.NewGateway(carrier.Config{
		BaseURL:  config.CarrierBaseURL,
		Email:    config.CarrierEmail,
		Password: config.CarrierPassword,
		Timeout:  timeout,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	probeGateways := []ports.CarrierGateway{gateway}
	for _, baseURL := range probeBaseURLs(config) {
		probe, err := carrier.NewGateway(carrier.Config{
			BaseURL:  baseURL,
			Email:    config.CarrierEmail,
			Password: config.CarrierPassword,
			Timeout:  timeout,
		})
		if err != nil {
			return CompositionRoot{}, err
		}
		probeGateways = append(probeGateways, probe)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:       gateway,
		probeGateways: probeGateways,
		logger:        logger,
	}, nil
}

// probeBaseURLs returns the extra base URLs the auth diagnostic should try,
// skipping any that duplicate the configured one.
func probeBaseURLs(config Config) []string {
	candidates := []string{config.CarrierFallbackBaseURL, defaultAggregatorBaseURL}

	var urls []string
	for _, candidate := range candidates {
		if candidate == "" || candidate == config.CarrierBaseURL {
			continue
		}
		duplicate := false
		for _, url := range urls {
			if url == candidate {
				duplicate = true
			}
		}
		if !duplicate {
			urls = append(urls, candidate)
		}
	}
	return urls
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.orderUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateOverrideShippingStatusCommandHandler() commands.OverrideShippingStatusCommandHandler {
	return commands.NewOverrideShippingStatusCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateReconcileDocumentsCommandHandler() commands.ReconcileDocumentsCommandHandler {
	return commands.NewReconcileDocumentsCommandHandler(c.orderUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateSyncTrackingCommandHandler() commands.SyncTrackingCommandHandler {
	return commands.NewSyncTrackingCommandHandler(c.orderUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateQuoteRatesQueryHandler() queries.QuoteRatesQueryHandler {
	return queries.NewQuoteRatesQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetPickupLocationsQueryHandler() queries.GetPickupLocationsQueryHandler {
	return queries.NewGetPickupLocationsQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateCheckCarrierAuthQueryHandler() queries.CheckCarrierAuthQueryHandler {
	return queries.NewCheckCarrierAuthQueryHandler(c.probeGateways...)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
