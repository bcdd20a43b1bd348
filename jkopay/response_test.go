package jkopay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultErr(t *testing.T) {
	assert.NoError(t, resultErr(ResultSuccess, nil))

	err := resultErr("999", nil)
	var rErr *ResultError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, "jkopay: result 999", err.Error())

	msg := "store not found"
	resp := &EntryResponse{Result: "102", Message: &msg}
	assert.EqualError(t, resp.Err(), "jkopay: result 102: store not found")

	inq := &InquiryResponse{Result: "000"}
	assert.NoError(t, inq.Err())
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"100"`, "100"},
		{`"99.95"`, "99.95"},
		{`42`, "42"},
		{`""`, "0"},
		{`null`, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a.String())
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`"ten"`), &a))
	})

	t.Run("NewAmount", func(t *testing.T) {
		assert.True(t, NewAmount(90).Equal(NewAmount(90).Decimal))
		assert.Equal(t, "90", NewAmount(90).String())
	})
}

func TestPtr(t *testing.T) {
	p := Ptr(false)
	require.NotNil(t, p)
	assert.False(t, *p)
}
