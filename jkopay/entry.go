package jkopay

import (
	"context"
)

type PaymentType string

const (
	PaymentOneTime PaymentType = "onetime"
	PaymentRegular PaymentType = "regular"
)

// EntryOptions are the optional order fields. A nil field is left out of the
// request entirely; the gateway applies its own defaults.
type EntryOptions struct {
	// Unredeem is the amount that cannot be covered by points or coupons.
	Unredeem *int64
	// ValidTime is the order deadline, "YYYY-mm-dd HH:MM" in UTC+8.
	ValidTime *string
	// ConfirmURL is called by the gateway after the buyer authorizes payment
	// so the merchant can confirm the order and stock.
	ConfirmURL *string
	// ResultURL receives the trade number and status once payment completes.
	ResultURL *string
	// ResultDisplayURL is where the buyer is sent after tapping "done".
	ResultDisplayURL *string
	PaymentType      *PaymentType
	Escrow           *bool
	// Products is omitted when nil and sent as [] when empty.
	Products []Product
}

type Product struct {
	Name           string
	Img            *string
	UnitCount      int64
	UnitPrice      int64
	UnitFinalPrice int64
}

// entryRequest is the /platform/entry body. Field order is the wire order.
type entryRequest struct {
	PlatformOrderID  string         `json:"platform_order_id"`
	StoreID          string         `json:"store_id"`
	Currency         string         `json:"currency"`
	TotalPrice       int64          `json:"total_price"`
	FinalPrice       int64          `json:"final_price"`
	Unredeem         *int64         `json:"unredeem,omitempty"`
	ValidTime        *string        `json:"valid_time,omitempty"`
	ConfirmURL       *string        `json:"confirm_url,omitempty"`
	ResultURL        *string        `json:"result_url,omitempty"`
	ResultDisplayURL *string        `json:"result_display_url,omitempty"`
	PaymentType      *PaymentType   `json:"payment_type,omitempty"`
	Escrow           *bool          `json:"escrow,omitempty"`
	Products         *[]wireProduct `json:"products,omitempty"`
}

type wireProduct struct {
	Name           string  `json:"name"`
	Img            *string `json:"img,omitempty"`
	UnitCount      int64   `json:"unit_count"`
	UnitPrice      int64   `json:"unit_price"`
	UnitFinalPrice int64   `json:"unit_final_price"`
}

type EntryResponse struct {
	Result       string      `json:"result"`
	Message      *string     `json:"message"`
	ResultObject EntryResult `json:"result_object"`
}

type EntryResult struct {
	PaymentURL string `json:"payment_url"`
	QRImg      string `json:"qr_img"`
	// QRTimeout is when the QR code and payment URL stop working.
	QRTimeout int64 `json:"qr_timeout"`
}

func (r *EntryResponse) Err() error {
	return resultErr(r.Result, r.Message)
}

// ----------------- Entry -----------------

// Entry creates a payment order. platformOrderID must be unique per store;
// that is enforced by the gateway, not here.
func (c *Client) Entry(
	ctx context.Context,
	platformOrderID string,
	totalPrice int64,
	finalPrice int64,
	opts EntryOptions,
) (*EntryResponse, error) {
	req := c.newEntryRequest(platformOrderID, totalPrice, finalPrice, opts)

	var res EntryResponse
	if err := c.postJSON(ctx, entryPath, req, []string{platformOrderID}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) newEntryRequest(platformOrderID string, totalPrice, finalPrice int64, opts EntryOptions) *entryRequest {
	req := &entryRequest{
		PlatformOrderID:  platformOrderID,
		StoreID:          c.storeID,
		Currency:         Currency,
		TotalPrice:       totalPrice,
		FinalPrice:       finalPrice,
		Unredeem:         opts.Unredeem,
		ValidTime:        opts.ValidTime,
		ConfirmURL:       opts.ConfirmURL,
		ResultURL:        opts.ResultURL,
		ResultDisplayURL: opts.ResultDisplayURL,
		PaymentType:      opts.PaymentType,
		Escrow:           opts.Escrow,
	}
	if opts.Products != nil {
		products := make([]wireProduct, 0, len(opts.Products))
		for _, p := range opts.Products {
			products = append(products, p.wire())
		}
		req.Products = &products
	}
	return req
}

func (p Product) wire() wireProduct {
	return wireProduct{
		Name:           p.Name,
		Img:            p.Img,
		UnitCount:      p.UnitCount,
		UnitPrice:      p.UnitPrice,
		UnitFinalPrice: p.UnitFinalPrice,
	}
}
