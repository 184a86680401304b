/*
Package factory constructs fully wired employees.

PURPOSE:
  The only construction path for employees. Given (name, role, type) and
  optional compensation overrides, it selects the payment strategy, bonus
  strategy and vacation policy from registries keyed by contract type and
  role, applies the configured defaults, and returns an aggregate ready
  for the roster.

WIRING TABLE:
  salaried   -> SalariedPayment   + Combined(SalariedBonus, PerformanceBonus)
  hourly     -> HourlyPayment     + Combined(HourlyBonus, PerformanceBonus)
  freelancer -> FreelancerPayment + PerformanceBonus

  intern (any type) -> bonus overridden to ZeroBonus

  Registries keep new (role, type) combinations additive - no conditional
  chains to grow.

DEFAULTS:
  Every employee starts with the configured vacation.default_days,
  regardless of role or type; eligibility is the vacation policy's job,
  so a zero-balance special case for interns or freelancers would only
  duplicate it. Salaried employees without an explicit salary get the
  configured default monthly salary; hourly employees without an explicit
  rate get the configured default hourly rate.

JSON SPECS:
  ParseEmployee accepts the same shape the HTTP layer receives:
    {"name": "Ada", "role": "manager", "type": "salaried",
     "monthly_salary": 6000}
  so config-driven seeding and the API share one construction path.

SEE ALSO:
  - payroll/, vacation/: the strategies and policies being wired
  - api/handlers.go: JSON spec consumer
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/vacation"
)

// Sentinel errors for invalid construction input. Unknown combinations
// are fatal to the call, never to the process.
var (
	ErrUnknownRole = errors.New("unknown employee role")
	ErrUnknownType = errors.New("unknown employee type")
	ErrMissingName = errors.New("employee name is required")
)

// =============================================================================
// OPTIONS
// =============================================================================

// Option overrides a compensation field during construction.
type Option func(*overrides)

type overrides struct {
	monthlySalary *float64
	hourlyRate    *float64
	hoursWorked   *int
	projects      []employee.Project
}

// WithMonthlySalary sets the monthly salary for a salaried employee.
func WithMonthlySalary(amount float64) Option {
	return func(o *overrides) { o.monthlySalary = &amount }
}

// WithHourlyRate sets the hourly rate for an hourly employee.
func WithHourlyRate(rate float64) Option {
	return func(o *overrides) { o.hourlyRate = &rate }
}

// WithHoursWorked sets the hours worked for an hourly employee.
func WithHoursWorked(hours int) Option {
	return func(o *overrides) { o.hoursWorked = &hours }
}

// WithProjects sets the project list for a freelancer.
func WithProjects(projects ...employee.Project) Option {
	return func(o *overrides) { o.projects = projects }
}

// =============================================================================
// REGISTRIES
// =============================================================================

type compensationWiring func(cfg *config.Config) (employee.PaymentStrategy, employee.BonusStrategy)

var compensationByType = map[employee.Type]compensationWiring{
	employee.TypeSalaried: func(cfg *config.Config) (employee.PaymentStrategy, employee.BonusStrategy) {
		return payroll.NewSalariedPayment(cfg),
			payroll.NewCombinedBonus(payroll.NewSalariedBonus(cfg), payroll.NewPerformanceBonus(cfg))
	},
	employee.TypeHourly: func(cfg *config.Config) (employee.PaymentStrategy, employee.BonusStrategy) {
		return payroll.NewHourlyPayment(),
			payroll.NewCombinedBonus(payroll.NewHourlyBonus(cfg), payroll.NewPerformanceBonus(cfg))
	},
	employee.TypeFreelancer: func(cfg *config.Config) (employee.PaymentStrategy, employee.BonusStrategy) {
		return payroll.NewFreelancerPayment(), payroll.NewPerformanceBonus(cfg)
	},
}

var vacationByRole = map[employee.Role]func(cfg *config.Config) employee.VacationPolicy{
	employee.RoleIntern: func(_ *config.Config) employee.VacationPolicy {
		return vacation.NewInternPolicy()
	},
	employee.RoleManager: func(cfg *config.Config) employee.VacationPolicy {
		return vacation.NewManagerPolicy(cfg)
	},
	employee.RoleVicePresident: func(cfg *config.Config) employee.VacationPolicy {
		return vacation.NewVicePresidentPolicy(cfg)
	},
	employee.RoleDeveloper: func(cfg *config.Config) employee.VacationPolicy {
		return vacation.NewDeveloperPolicy(cfg)
	},
}

// =============================================================================
// FACTORY
// =============================================================================

// Factory builds wired employees from a shared configuration.
type Factory struct {
	cfg *config.Config
}

// New creates a factory over the given configuration.
func New(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

// Create builds a fully wired employee.
func (f *Factory) Create(name string, role employee.Role, typ employee.Type, opts ...Option) (*employee.Employee, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	wireCompensation, ok := compensationByType[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	wireVacation, ok := vacationByRole[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	var o overrides
	for _, opt := range opts {
		opt(&o)
	}

	e := &employee.Employee{
		Name:         name,
		Role:         role,
		Type:         typ,
		VacationDays: f.cfg.Int("vacation.default_days"),
	}
	f.applyCompensationFields(e, &o)

	paymentStrategy, bonusStrategy := wireCompensation(f.cfg)
	if role == employee.RoleIntern {
		// Interns never earn a bonus, whatever their contract type.
		bonusStrategy = payroll.NewZeroBonus()
	}

	if err := e.Wire(paymentStrategy, bonusStrategy, wireVacation(f.cfg)); err != nil {
		return nil, err
	}
	return e, nil
}

func (f *Factory) applyCompensationFields(e *employee.Employee, o *overrides) {
	switch e.Type {
	case employee.TypeSalaried:
		salary := f.cfg.Float("payment.default_monthly_salary")
		if o.monthlySalary != nil {
			salary = *o.monthlySalary
		}
		e.MonthlySalary = decimal.NewFromFloat(salary)

	case employee.TypeHourly:
		rate := f.cfg.Float("payment.default_hourly_rate")
		if o.hourlyRate != nil {
			rate = *o.hourlyRate
		}
		e.HourlyRate = decimal.NewFromFloat(rate)
		if o.hoursWorked != nil {
			e.HoursWorked = *o.hoursWorked
		}

	case employee.TypeFreelancer:
		e.Projects = o.projects
	}
}

// =============================================================================
// JSON SPECS
// =============================================================================

// EmployeeSpec is the JSON shape for creating an employee.
type EmployeeSpec struct {
	Name          string        `json:"name"`
	Role          string        `json:"role"`
	Type          string        `json:"type"`
	MonthlySalary *float64      `json:"monthly_salary,omitempty"`
	HourlyRate    *float64      `json:"hourly_rate,omitempty"`
	HoursWorked   *int          `json:"hours_worked,omitempty"`
	Projects      []ProjectSpec `json:"projects,omitempty"`
}

// ProjectSpec is the JSON shape for a freelancer project.
type ProjectSpec struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ParseEmployee builds a wired employee from a JSON spec.
func (f *Factory) ParseEmployee(data []byte) (*employee.Employee, error) {
	var spec EmployeeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse employee spec: %w", err)
	}
	return f.FromSpec(spec)
}

// FromSpec builds a wired employee from a decoded spec.
func (f *Factory) FromSpec(spec EmployeeSpec) (*employee.Employee, error) {
	role, err := employee.ParseRole(spec.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, spec.Role)
	}
	typ, err := employee.ParseType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, spec.Type)
	}

	var opts []Option
	if spec.MonthlySalary != nil {
		opts = append(opts, WithMonthlySalary(*spec.MonthlySalary))
	}
	if spec.HourlyRate != nil {
		opts = append(opts, WithHourlyRate(*spec.HourlyRate))
	}
	if spec.HoursWorked != nil {
		opts = append(opts, WithHoursWorked(*spec.HoursWorked))
	}
	if len(spec.Projects) > 0 {
		projects := make([]employee.Project, len(spec.Projects))
		for i, p := range spec.Projects {
			projects[i] = employee.NewProject(p.Name, p.Amount)
		}
		opts = append(opts, WithProjects(projects...))
	}

	return f.Create(spec.Name, role, typ, opts...)
}
