// Package http wires the application's command and query handlers to the
// echo HTTP surface used by the back office.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// defaultDimensionCm is the package side length used when the caller does not
// supply dimensions on shipment creation.
const defaultDimensionCm = 10

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	createShipmentHandler commands.CreateShipmentCommandHandler
	overrideHandler       commands.OverrideShippingStatusCommandHandler

	// Query handlers
	quoteRatesHandler      queries.QuoteRatesQueryHandler
	trackShipmentHandler   queries.TrackShipmentQueryHandler
	pickupLocationsHandler queries.GetPickupLocationsQueryHandler
	checkAuthHandler       queries.CheckCarrierAuthQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	overrideHandler commands.OverrideShippingStatusCommandHandler,
	quoteRatesHandler queries.QuoteRatesQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	pickupLocationsHandler queries.GetPickupLocationsQueryHandler,
	checkAuthHandler queries.CheckCarrierAuthQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		createShipmentHandler:  createShipmentHandler,
		overrideHandler:        overrideHandler,
		quoteRatesHandler:      quoteRatesHandler,
		trackShipmentHandler:   trackShipmentHandler,
		pickupLocationsHandler: pickupLocationsHandler,
		checkAuthHandler:       checkAuthHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes mounts all routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.POST("/shipping/calculate", s.CalculateShipping)
	e.POST("/shipping/create-order", s.CreateShippingOrder)
	e.GET("/shipping/pickup-locations", s.GetPickupLocations)
	e.POST("/shipping/track", s.TrackShipment)
	e.GET("/shipping/test-auth", s.TestCarrierAuth)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id/shipping-status", s.OverrideShippingStatus)

	e.GET("/health", s.Health)
}

// CalculateShipping handles POST /shipping/calculate.
func (s *Server) CalculateShipping(ctx echo.Context) error {
	var req CalculateShippingRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, "missing or invalid rate parameters", err)
	}

	query, err := queries.NewQuoteRatesQuery(shipping.RateRequest{
		PickupPostcode:   req.PickupPostcode,
		DeliveryPostcode: req.DeliveryPostcode,
		WeightKg:         req.Weight,
		Dims: shipping.Dimensions{
			LengthCm:  req.Length,
			BreadthCm: req.Breadth,
			HeightCm:  req.Height,
		},
		COD: req.COD,
	})
	if err != nil {
		return writeError(ctx, "invalid rate parameters", err)
	}

	quotes, err := s.quoteRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, "rate calculation failed", err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"available_couriers": quotes})
}

// CreateShippingOrder handles POST /shipping/create-order.
func (s *Server) CreateShippingOrder(ctx echo.Context) error {
	var req CreateShippingOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, "missing or invalid shipment parameters", err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", err)
	}

	cmd, err := commands.NewCreateShipmentCommand(orderID, req.CourierID, dimsFromRequest(req), req.COD)
	if err != nil {
		return writeError(ctx, "invalid shipment parameters", err)
	}

	result, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, "shipment creation failed", err)
	}

	return ctx.JSON(http.StatusOK, CreateShippingOrderResponse{
		CarrierOrderID:    result.CarrierOrderID,
		CarrierShipmentID: result.CarrierShipmentID,
		TrackingID:        result.TrackingID,
		LabelURL:          result.LabelURL,
		ManifestURL:       result.ManifestURL,
		DocumentsPending:  result.DocumentsPending,
	})
}

// GetPickupLocations handles GET /shipping/pickup-locations.
func (s *Server) GetPickupLocations(ctx echo.Context) error {
	locations, err := s.pickupLocationsHandler.Handle(ctx.Request().Context(), queries.NewGetPickupLocationsQuery())
	if err != nil {
		return writeError(ctx, "pickup location listing failed", err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"pickup_locations": locations})
}

// TrackShipment handles POST /shipping/track. The carrier's tracking payload
// is returned as-is.
func (s *Server) TrackShipment(ctx echo.Context) error {
	var req TrackShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", err)
	}

	query, err := queries.NewTrackShipmentQuery(shipping.TrackingQuery{
		ShipmentID: req.ShipmentID,
		AWBCode:    req.AWBCode,
	})
	if err != nil {
		return writeError(ctx, "shipment_id or awb_code is required", err)
	}

	snapshot, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, "tracking failed", err)
	}

	return ctx.JSONBlob(http.StatusOK, snapshot.Raw)
}

// TestCarrierAuth handles GET /shipping/test-auth.
func (s *Server) TestCarrierAuth(ctx echo.Context) error {
	probes, err := s.checkAuthHandler.Handle(ctx.Request().Context(), queries.NewCheckCarrierAuthQuery())
	if err != nil {
		return writeError(ctx, "carrier diagnostics failed", err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"probes": probes})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, "missing or invalid order fields", err)
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return writeError(ctx, "invalid order fields", err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)
	if err != nil {
		return writeError(ctx, "invalid order fields", err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, "order creation failed", err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, "order lookup failed", err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// OverrideShippingStatus handles PUT /orders/:id/shipping-status.
func (s *Server) OverrideShippingStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", err)
	}

	var req OverrideShippingStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", err)
	}
	if err = ctx.Validate(&req); err != nil {
		return writeBadRequest(ctx, "shipping_status is required", err)
	}

	status, err := order.ShippingStatusFromString(req.ShippingStatus)
	if err != nil {
		return writeError(ctx, "unknown shipping status", err)
	}

	cmd, err := commands.NewOverrideShippingStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, "invalid override", err)
	}

	if err = s.overrideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, "status override failed", err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"shipping_status": status.String()})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func dimsFromRequest(req CreateShippingOrderRequest) shipping.Dimensions {
	dims := shipping.Dimensions{
		LengthCm:  defaultDimensionCm,
		BreadthCm: defaultDimensionCm,
		HeightCm:  defaultDimensionCm,
	}
	if req.Length != nil {
		dims.LengthCm = *req.Length
	}
	if req.Breadth != nil {
		dims.BreadthCm = *req.Breadth
	}
	if req.Height != nil {
		dims.HeightCm = *req.Height
	}
	return dims
}

func detailsFromRequest(req CreateOrderRequest) (order.Details, error) {
	totalPrice, err := decimal.NewFromString(req.TotalPrice)
	if err != nil {
		return order.Details{}, err
	}

	paymentAmount := totalPrice
	if req.PaymentAmount != "" {
		if paymentAmount, err = decimal.NewFromString(req.PaymentAmount); err != nil {
			return order.Details{}, err
		}
	}

	return order.Details{
		IdempotencyKey: req.IdempotencyKey,
		Customer: order.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Address: order.Address{
			Line:     req.AddressLine,
			City:     req.AddressCity,
			State:    req.AddressState,
			Country:  req.AddressCountry,
			Postcode: req.Postcode,
		},
		ItemWeights:   req.ItemWeights,
		TotalPrice:    totalPrice,
		PaymentAmount: paymentAmount,
		CouponCode:    req.CouponCode,
	}, nil
}
