// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to a relational table with indexes for the
// shipping sweeps: reconciliation reads by shipping status and linkage
// columns, tracking sync reads by shipping status alone.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	// Nil when the client supplied no key. NULLs never collide under the
	// unique index, so key-less captures may repeat freely.
	IdempotencyKey *string `gorm:"uniqueIndex"`

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	AddressLine     string
	AddressCity     string
	AddressState    string
	AddressCountry  string
	AddressPostcode string

	ItemWeights   []float64       `gorm:"serializer:json"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	CouponCode    *string

	Status         int
	PaymentStatus  string
	ShippingStatus int `gorm:"index"`

	CarrierOrderID    *string
	CarrierShipmentID *string
	TrackingID        *string
	LabelURL          *string
	ManifestURL       *string

	RefundStatus    *string
	RefundID        *string
	RefundAmount    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CancellationFee *decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	refund := aggregate.Refund()

	var idempotencyKey *string
	if key := aggregate.IdempotencyKey(); key != "" {
		idempotencyKey = &key
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CreatedAt:      aggregate.CreatedAt(),
		IdempotencyKey: idempotencyKey,

		CustomerName:  aggregate.Customer().Name,
		CustomerEmail: aggregate.Customer().Email,
		CustomerPhone: aggregate.Customer().Phone,

		AddressLine:     aggregate.Address().Line,
		AddressCity:     aggregate.Address().City,
		AddressState:    aggregate.Address().State,
		AddressCountry:  aggregate.Address().Country,
		AddressPostcode: aggregate.Address().Postcode,

		ItemWeights:   aggregate.ItemWeights(),
		TotalPrice:    aggregate.TotalPrice(),
		PaymentAmount: aggregate.PaymentAmount(),
		CouponCode:    aggregate.CouponCode(),

		Status:         int(aggregate.Status()),
		PaymentStatus:  aggregate.PaymentStatus(),
		ShippingStatus: int(aggregate.ShippingStatus()),

		CarrierOrderID:    aggregate.CarrierOrderID(),
		CarrierShipmentID: aggregate.CarrierShipmentID(),
		TrackingID:        aggregate.TrackingID(),
		LabelURL:          aggregate.LabelURL(),
		ManifestURL:       aggregate.ManifestURL(),

		RefundStatus:    refund.Status,
		RefundID:        refund.ID,
		RefundAmount:    refund.Amount,
		CancellationFee: refund.CancellationFee,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including shipping state and carrier
// linkage using RestoreOrder, so linkage invariants are re-checked on read.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var idempotencyKey string
	if dto.IdempotencyKey != nil {
		idempotencyKey = *dto.IdempotencyKey
	}

	details := order.Details{
		IdempotencyKey: idempotencyKey,
		Customer: order.Customer{
			Name:  dto.CustomerName,
			Email: dto.CustomerEmail,
			Phone: dto.CustomerPhone,
		},
		Address: order.Address{
			Line:     dto.AddressLine,
			City:     dto.AddressCity,
			State:    dto.AddressState,
			Country:  dto.AddressCountry,
			Postcode: dto.AddressPostcode,
		},
		ItemWeights:   dto.ItemWeights,
		TotalPrice:    dto.TotalPrice,
		PaymentAmount: dto.PaymentAmount,
		CouponCode:    dto.CouponCode,
	}

	linkage := order.CarrierLinkage{
		OrderID:     dto.CarrierOrderID,
		ShipmentID:  dto.CarrierShipmentID,
		TrackingID:  dto.TrackingID,
		LabelURL:    dto.LabelURL,
		ManifestURL: dto.ManifestURL,
	}

	refund := order.Refund{
		Status:          dto.RefundStatus,
		ID:              dto.RefundID,
		Amount:          dto.RefundAmount,
		CancellationFee: dto.CancellationFee,
	}

	return order.RestoreOrder(
		id,
		details,
		dto.CreatedAt,
		order.Status(dto.Status),
		dto.PaymentStatus,
		order.ShippingStatus(dto.ShippingStatus),
		linkage,
		refund,
	)
}
