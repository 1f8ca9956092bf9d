package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
// Reads the orders table directly rather than rehydrating the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at,
			customer_name,
			customer_email,
			customer_phone,
			address_line,
			address_city,
			address_state,
			address_country,
			address_postcode,
			item_weights,
			total_price,
			payment_amount,
			coupon_code,
			status,
			payment_status,
			shipping_status,
			carrier_order_id,
			carrier_shipment_id,
			tracking_id,
			label_url,
			manifest_url,
			refund_status,
			refund_id,
			refund_amount,
			cancellation_fee
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp        GetOrderQueryResponse
		id          uuid.UUID
		itemWeights []byte
		status      int
		shipping    int
		refundAmt   sql.NullString
		cancelFee   sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.CreatedAt,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.AddressLine,
		&resp.AddressCity,
		&resp.AddressState,
		&resp.AddressCountry,
		&resp.AddressPostcode,
		&itemWeights,
		&resp.TotalPrice,
		&resp.PaymentAmount,
		&resp.CouponCode,
		&status,
		&resp.PaymentStatus,
		&shipping,
		&resp.CarrierOrderID,
		&resp.CarrierShipmentID,
		&resp.TrackingID,
		&resp.LabelURL,
		&resp.ManifestURL,
		&resp.RefundStatus,
		&resp.RefundID,
		&refundAmt,
		&cancelFee,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID = id.String()
	resp.Status = order.Status(status).String()
	resp.ShippingStatus = order.ShippingStatus(shipping).String()

	if len(itemWeights) > 0 {
		if err = json.Unmarshal(itemWeights, &resp.ItemWeights); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	if refundAmt.Valid {
		resp.RefundAmount = &refundAmt.String
	}
	if cancelFee.Valid {
		resp.CancellationFee = &cancelFee.String
	}

	return resp, nil
}
