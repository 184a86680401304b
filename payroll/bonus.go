package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/employee"
)

// =============================================================================
// BONUS STRATEGIES
// =============================================================================

// ZeroBonus never pays a bonus. Assigned to interns regardless of type.
type ZeroBonus struct{}

func NewZeroBonus() *ZeroBonus {
	return &ZeroBonus{}
}

func (z *ZeroBonus) CalculateBonus(_ *employee.Employee, _ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// SalariedBonus pays a configured percentage of the base payment.
type SalariedBonus struct {
	cfg *config.Config
}

func NewSalariedBonus(cfg *config.Config) *SalariedBonus {
	return &SalariedBonus{cfg: cfg}
}

func (s *SalariedBonus) CalculateBonus(_ *employee.Employee, basePayment decimal.Decimal) decimal.Decimal {
	percentage := s.cfg.Float("payment.bonus.salaried_percentage")
	return basePayment.Mul(decimal.NewFromFloat(percentage))
}

// HourlyBonus pays a flat amount once hours worked exceed the configured
// threshold. The boundary is exclusive: exactly threshold hours pays nothing.
type HourlyBonus struct {
	cfg *config.Config
}

func NewHourlyBonus(cfg *config.Config) *HourlyBonus {
	return &HourlyBonus{cfg: cfg}
}

func (h *HourlyBonus) CalculateBonus(e *employee.Employee, _ decimal.Decimal) decimal.Decimal {
	threshold := h.cfg.Int("payment.bonus.hourly_hours_threshold")
	if e.HoursWorked > threshold {
		return decimal.NewFromFloat(h.cfg.Float("payment.bonus.hourly_bonus_amount"))
	}
	return decimal.Zero
}

// PerformanceBonus applies a per-contract-type rate to the base payment.
// A type with no configured rate earns nothing; the missing key reads as
// zero rather than failing.
type PerformanceBonus struct {
	cfg *config.Config
}

func NewPerformanceBonus(cfg *config.Config) *PerformanceBonus {
	return &PerformanceBonus{cfg: cfg}
}

func (p *PerformanceBonus) CalculateBonus(e *employee.Employee, basePayment decimal.Decimal) decimal.Decimal {
	rate := p.cfg.Float("payment.bonus.performance." + string(e.Type))
	if rate == 0 {
		return decimal.Zero
	}
	return basePayment.Mul(decimal.NewFromFloat(rate))
}

// CombinedBonus sums two independently assigned strategies. Used to layer
// a performance bonus on top of the type-specific bonus.
type CombinedBonus struct {
	Base  employee.BonusStrategy
	Extra employee.BonusStrategy
}

func NewCombinedBonus(base, extra employee.BonusStrategy) *CombinedBonus {
	return &CombinedBonus{Base: base, Extra: extra}
}

func (c *CombinedBonus) CalculateBonus(e *employee.Employee, basePayment decimal.Decimal) decimal.Decimal {
	return c.Base.CalculateBonus(e, basePayment).Add(c.Extra.CalculateBonus(e, basePayment))
}

var (
	_ employee.BonusStrategy = (*ZeroBonus)(nil)
	_ employee.BonusStrategy = (*SalariedBonus)(nil)
	_ employee.BonusStrategy = (*HourlyBonus)(nil)
	_ employee.BonusStrategy = (*PerformanceBonus)(nil)
	_ employee.BonusStrategy = (*CombinedBonus)(nil)
)
