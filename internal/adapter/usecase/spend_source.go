package usecase

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// SpendSource supplies the spend increment accrued for a campaign that
// stays active through a sweep. Real spend would come from ad serving;
// this core only consumes amounts.
type SpendSource interface {
	Amount() decimal.Decimal
}

// SimulatedSpend produces a small randomized placeholder amount: a base
// rate of 0.01 per sweep scaled by a uniform factor in [0.5, 1.5]. The
// result is rounded to cents and floored at 0.01 so the ledger's
// positive-amount rule always holds.
type SimulatedSpend struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSpend returns a spend source seeded from the current time.
func NewSimulatedSpend() *SimulatedSpend {
	return &SimulatedSpend{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var (
	baseSpendRate = decimal.RequireFromString("0.01")
	minSpend      = decimal.RequireFromString("0.01")
)

func (s *SimulatedSpend) Amount() decimal.Decimal {
	s.mu.Lock()
	factor := 0.5 + s.rng.Float64()
	s.mu.Unlock()

	amount := baseSpendRate.Mul(decimal.NewFromFloat(factor)).Round(2)
	if amount.LessThan(minSpend) {
		return minSpend
	}
	return amount
}

// FixedSpend always returns the same amount. Used by tests and by
// deployments that prefer a deterministic drain rate.
type FixedSpend struct {
	Value decimal.Decimal
}

func (s FixedSpend) Amount() decimal.Decimal { return s.Value }
