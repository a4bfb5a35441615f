package brx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso date", "2026-08-31", "31/08/2026"},
		{"empty", "", ""},
		{"garbage passes through", "not-a-date", "not-a-date"},
		{"impossible date passes through", "2026-13-99", "2026-13-99"},
		{"already formatted passes through", "31/08/2026", "31/08/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"small", 75, "R$ 75,00"},
		{"cents", 12.5, "R$ 12,50"},
		{"thousands", 2500, "R$ 2.500,00"},
		{"large", 1234567.89, "R$ 1.234.567,89"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.value))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"too short stays bare", "123", "123"},
		{"eight digits", "32135687", "3213-5687"},
		{"landline with area", "1140093757", "(11) 4009-3757"},
		{"mobile", "11940093757", "(11) 94009-3757"},
		{"already masked", "(11) 94009-3757", "(11) 94009-3757"},
		{"extra digits dropped", "119400937570", "(11) 94009-3757"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.in))
		})
	}
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "46.332.306/0001-46", FormatCNPJ("46332306000146"))
	assert.Equal(t, "46.332.306/0001-46", FormatCNPJ("46.332.306/0001-46"))
	assert.Equal(t, "123", FormatCNPJ("123"))
}
