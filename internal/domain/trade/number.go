package trade

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	orderNumberPrefix = "TECH13"
	saleNumberPrefix  = "WALKIN"
)

// randomSuffix returns a four digit number in [1000, 9999]
var randomSuffix = func() int {
	return 1000 + rand.IntN(9000)
}

// NewOrderNumber returns TECH13-YYYYMMDD-NNNN for the given day
func NewOrderNumber(now time.Time) string {
	return formatNumber(orderNumberPrefix, now)
}

// NewSaleNumber returns WALKIN-YYYYMMDD-NNNN for the given day
func NewSaleNumber(now time.Time) string {
	return formatNumber(saleNumberPrefix, now)
}

func formatNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), randomSuffix())
}
