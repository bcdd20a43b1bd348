package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"Single", []string{"A1"}, []string{"A1"}},
		{"Comma separated", []string{"A1,B2"}, []string{"A1", "B2"}},
		{"Mixed", []string{"A1,B2", "C3"}, []string{"A1", "B2", "C3"}},
		{"Blanks dropped", []string{" A1 , ,", ""}, []string{"A1"}},
		{"Empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitIDs(tt.args))
		})
	}
}

func TestPtrString(t *testing.T) {
	s := "hello"
	assert.Equal(t, "hello", PtrString(&s))
	assert.Equal(t, "", PtrString(nil))
}
