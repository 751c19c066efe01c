package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCard(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "plain digits", input: "4111111111111111", want: "**** **** **** 1111"},
		{name: "spaced digits", input: "4111 1111 1111 4242", want: "**** **** **** 4242"},
		{name: "tabs and newlines", input: "5500\t0000\n0000 0004", want: "**** **** **** 0004"},
		{name: "json number", input: json.Number("4000056655665556"), want: "**** **** **** 5556"},
		{name: "short input kept whole", input: "12", want: "**** **** **** 12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCard(tt.input))
		})
	}
}

func TestMaskAccount(t *testing.T) {
	assert.Equal(t, "****9012", MaskAccount("123456789012"))
	assert.Equal(t, "****9012", MaskAccount(json.Number("123456789012")))
	assert.Equal(t, "****789", MaskAccount("789"))
}
