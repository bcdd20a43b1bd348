package jkopay

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Refund(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		respBody := `{
			"result": "000",
			"message": null,
			"result_object": {
				"refund_tradeNo": "R-1",
				"debit_amount": "90",
				"redeem_amount": "10.5",
				"refund_time": "2026-10-14 09:30:12"
			}
		}`
		client, got := newTestClient(t, http.StatusOK, respBody)

		resp, err := client.Refund(context.Background(), "A1", 100)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.req.Method)
		assert.Equal(t, "https://uat-onlinepay.jkopay.app/platform/refund", got.req.URL.String())
		assert.Equal(t, `{"platform_order_id":"A1","refund_amount":100}`, string(got.body))
		assert.Equal(t,
			"35d95003d4830a53e10af4f1da147ea5c965f5686bfb07f65b715bb48fb145fb",
			got.req.Header.Get("DIGEST"),
		)

		assert.Equal(t, "000", resp.Result)
		assert.Nil(t, resp.Message)
		assert.Equal(t, "R-1", resp.ResultObject.RefundTradeNo)
		assert.Equal(t, "90", resp.ResultObject.DebitAmount.String())
		assert.Equal(t, "10.5", resp.ResultObject.RedeemAmount.String())
		assert.Equal(t, "2026-10-14 09:30:12", resp.ResultObject.RefundTime)
		assert.NoError(t, resp.Err())
	})

	t.Run("GatewayFailureReturnedVerbatim", func(t *testing.T) {
		respBody := `{"result":"153","message":"refund amount exceeds order","result_object":null}`
		client, _ := newTestClient(t, http.StatusOK, respBody)

		resp, err := client.Refund(context.Background(), "A1", 999999)

		require.NoError(t, err)
		assert.Equal(t, "153", resp.Result)
		require.NotNil(t, resp.Message)
		assert.Equal(t, "refund amount exceeds order", *resp.Message)

		var resultErr *ResultError
		require.ErrorAs(t, resp.Err(), &resultErr)
		assert.Equal(t, "153", resultErr.Result)
		assert.Equal(t, "jkopay: result 153: refund amount exceeds order", resultErr.Error())
	})

	t.Run("NoLocalAmountCheck", func(t *testing.T) {
		client, got := newTestClient(t, http.StatusOK, `{"result":"000"}`)

		_, err := client.Refund(context.Background(), "A1", 0)

		require.NoError(t, err)
		assert.Equal(t, 1, got.calls)
		assert.Equal(t, `{"platform_order_id":"A1","refund_amount":0}`, string(got.body))
	})
}
