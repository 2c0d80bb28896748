package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyConstruction(t *testing.T) {
	m := New(1234.56)
	assert.Equal(t, "1234.56", m.String())

	d := FromDecimal(decimal.NewFromInt(900))
	assert.Equal(t, "900.00", d.String())

	s, err := FromString("2625.00")
	assert.NoError(t, err)
	assert.Equal(t, "2625.00", s.String())

	_, err = FromString("not-a-number")
	assert.Error(t, err)

	assert.Equal(t, "0.00", Zero().String())
}

func TestMoneyArithmetic(t *testing.T) {
	a := New(100.50)
	b := New(50.25)

	assert.Equal(t, "150.75", a.Add(b).String())
	assert.Equal(t, "50.25", a.Sub(b).String())
	assert.Equal(t, "50.25", Min(a, b).String())
	assert.Equal(t, "100.50", Max(a, b).String())
}

func TestMoneyConversions(t *testing.T) {
	monthly := New(900)
	assert.Equal(t, "10800.00", monthly.Annual().String())

	annual := New(12000)
	assert.Equal(t, "1000.00", annual.Monthly().String())
}

func TestMoneyRound(t *testing.T) {
	m := FromDecimal(decimal.NewFromFloat(10.456))
	assert.Equal(t, "10.46", m.Round().String())
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", New(1234.5).Format())
	assert.Equal(t, "-$80.25", New(-80.25).Format())
	assert.Equal(t, "$0.00", Zero().Format())
}
