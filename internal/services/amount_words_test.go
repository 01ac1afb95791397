package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"0", "HNL", "CERO LEMPIRAS CON 00/100"},
		{"1500.50", "HNL", "MIL QUINIENTOS LEMPIRAS CON 50/100"},
		{"121", "HNL", "CIENTO VEINTIUNO LEMPIRAS CON 00/100"},
		{"45.07", "usd", "CUARENTA Y CINCO DÓLARES CON 07/100"},
		{"2000000", "EUR", "DOS MILLONES EUROS CON 00/100"},
		{"1000001", "HNL", "UN MILLÓN UNO LEMPIRAS CON 00/100"},
		{"25300.999", "HNL", "VEINTICINCO MIL TRESCIENTOS UNO LEMPIRAS CON 00/100"},
		{"-10", "GTQ", "MENOS DIEZ GTQ CON 00/100"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(dec(tt.amount), tt.currency))
		})
	}
}
