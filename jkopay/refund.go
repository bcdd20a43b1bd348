package jkopay

import (
	"context"
)

type refundRequest struct {
	PlatformOrderID string `json:"platform_order_id"`
	RefundAmount    int64  `json:"refund_amount"`
}

type RefundResponse struct {
	Result       string       `json:"result"`
	Message      *string      `json:"message"`
	ResultObject RefundResult `json:"result_object"`
}

type RefundResult struct {
	RefundTradeNo string `json:"refund_tradeNo"`
	// DebitAmount is returned to the buyer's payment instrument.
	DebitAmount Amount `json:"debit_amount"`
	// RedeemAmount is returned as points or coupons.
	RedeemAmount Amount `json:"redeem_amount"`
	// RefundTime is "YYYY-mm-dd HH:MM:SS".
	RefundTime string `json:"refund_time"`
}

func (r *RefundResponse) Err() error {
	return resultErr(r.Result, r.Message)
}

// ----------------- Refund -----------------

// Refund refunds part or all of an order. Partial and repeated refunds are
// allowed; the gateway rejects a total above the charged amount.
func (c *Client) Refund(ctx context.Context, platformOrderID string, refundAmount int64) (*RefundResponse, error) {
	req := refundRequest{
		PlatformOrderID: platformOrderID,
		RefundAmount:    refundAmount,
	}

	var res RefundResponse
	if err := c.postJSON(ctx, refundPath, req, []string{platformOrderID}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
