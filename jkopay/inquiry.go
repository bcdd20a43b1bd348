package jkopay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator"
	"go.uber.org/zap"
)

// MaxInquiryOrders is the most order ids one inquiry may carry.
const MaxInquiryOrders = 20

var validate = validator.New()

type InquiryResponse struct {
	Result       string        `json:"result"`
	Message      *string       `json:"message"`
	ResultObject InquiryResult `json:"result_object"`
}

type InquiryResult struct {
	Transactions Transactions `json:"transactions"`
}

func (r *InquiryResponse) Err() error {
	return resultErr(r.Result, r.Message)
}

// Transaction is either a *TransactionRecord or a *TransactionError.
type Transaction interface {
	OrderID() string
	StatusCode() int
	isTransaction()
}

// TransactionRecord is the full payment and refund history of one order.
type TransactionRecord struct {
	PlatformOrderID string `json:"platform_order_id"`
	Status          int    `json:"status"`
	TradeNo         string `json:"tradeNo"`
	// TransTime is "YYYY-mm-dd HH:MM:SS".
	TransTime    string `json:"trans_time"`
	FinalPrice   Amount `json:"final_price"`
	RedeemAmount Amount `json:"redeem_amount"`
	// DebitAmount is what the payment instrument was charged after redemption.
	DebitAmount Amount `json:"debit_amount"`
	// MaskNo is set for credit cards, e.g. 222222******3333.
	MaskNo        *string         `json:"maskNo,omitempty"`
	RefundHistory []RefundHistory `json:"refund_history,omitempty"`
}

type RefundHistory struct {
	RefundTradeNo string `json:"refund_tradeNo"`
	Time          string `json:"time"`
	Amount        Amount `json:"amount"`
	RedeemAmount  Amount `json:"redeem_amount"`
	DebitAmount   Amount `json:"debit_amount"`
}

// TransactionError is returned for an order the gateway could not resolve.
type TransactionError struct {
	PlatformOrderID string `json:"platform_order_id"`
	Status          int    `json:"status"`
}

func (t *TransactionRecord) OrderID() string { return t.PlatformOrderID }
func (t *TransactionRecord) StatusCode() int { return t.Status }
func (t *TransactionRecord) isTransaction() {}

func (t *TransactionError) OrderID() string { return t.PlatformOrderID }
func (t *TransactionError) StatusCode() int { return t.Status }
func (t *TransactionError) isTransaction() {}

type Transactions []Transaction

// transactionProbe records which detail fields are present.
type transactionProbe struct {
	TradeNo       *json.RawMessage `json:"tradeNo"`
	TransTime     *json.RawMessage `json:"trans_time"`
	FinalPrice    *json.RawMessage `json:"final_price"`
	RedeemAmount  *json.RawMessage `json:"redeem_amount"`
	DebitAmount   *json.RawMessage `json:"debit_amount"`
	MaskNo        *json.RawMessage `json:"maskNo"`
	RefundHistory *json.RawMessage `json:"refund_history"`
}

func (p transactionProbe) hasDetail() bool {
	return p.TradeNo != nil ||
		p.TransTime != nil ||
		p.FinalPrice != nil ||
		p.RedeemAmount != nil ||
		p.DebitAmount != nil ||
		p.MaskNo != nil ||
		p.RefundHistory != nil
}

func (ts *Transactions) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Transactions, 0, len(raws))
	for i, raw := range raws {
		t, err := decodeTransaction(raw)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		out = append(out, t)
	}
	*ts = out
	return nil
}

func decodeTransaction(raw json.RawMessage) (Transaction, error) {
	var probe transactionProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if probe.hasDetail() {
		var rec TransactionRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	}
	var te TransactionError
	if err := json.Unmarshal(raw, &te); err != nil {
		return nil, err
	}
	return &te, nil
}

// ----------------- Inquiry -----------------

// Inquiry fetches the payment and refund history of up to MaxInquiryOrders
// orders.
func (c *Client) Inquiry(ctx context.Context, platformOrderIDs ...string) (*InquiryResponse, error) {
	query, err := inquiryQuery(platformOrderIDs)
	if err != nil {
		c.log.Warn("Rejected inquiry", zap.Error(err), zap.Int("count", len(platformOrderIDs)))
		return nil, err
	}

	var res InquiryResponse
	err = c.send(ctx, call{
		method:   http.MethodGet,
		path:     inquiryPath,
		rawQuery: query,
		signed:   []byte(query),
		orderIDs: platformOrderIDs,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// inquiryQuery is the encoded query string, which is also what gets signed.
func inquiryQuery(ids []string) (string, error) {
	if err := validate.Var(ids, fmt.Sprintf("min=1,max=%d", MaxInquiryOrders)); err != nil {
		return "", &ValidationError{
			Field:  "platform_order_ids",
			Reason: fmt.Sprintf("want 1 to %d ids, got %d", MaxInquiryOrders, len(ids)),
		}
	}
	// Ids are comma-joined on the wire, so an id holding a comma would count
	// as several.
	if err := validate.Var(ids, "dive,required,excludesall=0x2C"); err != nil {
		return "", &ValidationError{
			Field:  "platform_order_ids",
			Reason: "ids must be non-empty and must not contain ','",
		}
	}
	v := url.Values{}
	v.Set("platform_order_ids", strings.Join(ids, ","))
	return v.Encode(), nil
}
