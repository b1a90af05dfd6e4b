package chart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showinvestor-dev/showinvestor/internal/model"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func review(month time.Month, sales, expenses string) model.MonthlyReview {
	s, e := dec(sales), dec(expenses)
	return model.MonthlyReview{
		Month:    month,
		Sales:    s,
		Expenses: e,
		Profit:   s.Add(e),
	}
}

func TestAggregate_ReturnsPNG(t *testing.T) {
	png, err := Aggregate([]model.MonthlyReview{
		review(time.January, "100", "-40"),
		review(time.February, "200", "-250"),
	})
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:4])
}

func TestAggregate_EmptySeries(t *testing.T) {
	// Empty series renders zero-valued bars rather than failing.
	png, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestMonthly_ReturnsPNG(t *testing.T) {
	png, err := Monthly(time.March, dec("150"), dec("-90"))
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestMonthly_ZeroValues(t *testing.T) {
	png, err := Monthly(time.March, dec("0"), dec("0"))
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}
