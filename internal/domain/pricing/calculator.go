package pricing

import (
	"fmt"
	"math"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

// Calculator turns scope parameters into a Calculation.
//
// ComputeBudget is pure and deterministic: identical input against the same
// Config always yields an identical Calculation. No clock, no randomness, no
// persistence.

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// partial is what each service strategy contributes before the common
// post-processing (survey fee, discount, installments, profitability ceiling).
type partial struct {
	basePrice      float64
	adjustedPrice  float64
	avgMultiplier  float64
	extrasTotal    float64
	estimatedHours float64
	perEnvironment []entities.EnvironmentPricing
}

func (c *Calculator) ComputeBudget(scope entities.ScopeParameters) (entities.Calculation, error) {
	if err := c.validateCommon(scope); err != nil {
		return entities.Calculation{}, err
	}

	var (
		p   partial
		err error
	)
	switch scope.ServiceType {
	case entities.ServiceDecor:
		p, err = c.computeDecor(scope)
	case entities.ServiceProducao:
		p, err = c.computeProducao(scope)
	case entities.ServiceArquiteturaExpress:
		p, err = c.computeArquiteturaExpress(scope)
	default:
		return entities.Calculation{}, unsupportedService("service_type", string(scope.ServiceType))
	}
	if err != nil {
		return entities.Calculation{}, err
	}

	return c.finalize(scope, p)
}

func (c *Calculator) validateCommon(scope entities.ScopeParameters) error {
	switch scope.Modality {
	case entities.ModalityOnline, entities.ModalityPresencial:
	default:
		return invalidParam("modality", "must be online or presencial")
	}
	if scope.SurveyFee < 0 {
		return invalidParam("survey_fee", "must be >= 0")
	}
	if scope.ExtraEnvironmentCount < 0 {
		return invalidParam("extra_environment_count", "must be >= 0")
	}

	switch scope.PaymentTerms.Mode {
	case entities.PaymentAVista:
		if !containsFloat(c.cfg.CashDiscountPercents, scope.PaymentTerms.DiscountPercent) {
			return invalidParam("payment_terms.discount_percent",
				fmt.Sprintf("%.0f is not an allowed cash discount", scope.PaymentTerms.DiscountPercent))
		}
	case entities.PaymentParcelado:
		if scope.PaymentTerms.DiscountPercent != 0 {
			return invalidParam("payment_terms.discount_percent", "installment plans carry no discount")
		}
	default:
		return invalidParam("payment_terms.mode", "must be a_vista or parcelado")
	}

	if scope.Management != nil && scope.Management.MonthlyFee < c.cfg.MinManagementFee {
		return invalidParam("management.monthly_fee",
			fmt.Sprintf("must be >= %.2f", c.cfg.MinManagementFee))
	}
	return nil
}

func (c *Calculator) computeDecor(scope entities.ScopeParameters) (partial, error) {
	n := len(scope.Environments)
	if n < 1 {
		return partial{}, invalidParam("environments", "at least one environment is required")
	}
	if n > c.cfg.IncludedEnvironments {
		return partial{}, outOfRange("environments",
			fmt.Sprintf("at most %d configured environments; use extra_environment_count beyond that", c.cfg.IncludedEnvironments))
	}

	base, ok := c.cfg.DecorBase[n]
	if !ok {
		return partial{}, outOfRange("environments", fmt.Sprintf("no base price configured for %d environments", n))
	}

	perEnv := make([]entities.EnvironmentPricing, 0, n)
	sum := 0.0
	for i, env := range scope.Environments {
		tm, ok := c.cfg.TypeMultipliers[env.Type]
		if !ok {
			return partial{}, invalidParam(fmt.Sprintf("environments[%d].type", i), "unknown environment type "+env.Type)
		}
		sm, ok := c.cfg.SizeMultipliers[env.Size]
		if !ok {
			return partial{}, invalidParam(fmt.Sprintf("environments[%d].size", i), "size must be S, M or L")
		}
		combined := tm * sm
		sum += combined
		perEnv = append(perEnv, entities.EnvironmentPricing{
			Index:              i,
			Type:               env.Type,
			Size:               env.Size,
			CombinedMultiplier: combined,
		})
	}
	avg := sum / float64(n)

	// Extra environments are charged flat: no multiplier adjustment applies.
	extras := float64(scope.ExtraEnvironmentCount) * c.cfg.ExtraEnvironmentPrice
	hours := base.Hours + float64(scope.ExtraEnvironmentCount)*c.cfg.ExtraEnvironmentHours

	return partial{
		basePrice:      base.Price,
		adjustedPrice:  base.Price * avg,
		avgMultiplier:  avg,
		extrasTotal:    extras,
		estimatedHours: hours,
		perEnvironment: perEnv,
	}, nil
}

func (c *Calculator) computeProducao(scope entities.ScopeParameters) (partial, error) {
	count := len(scope.Environments) + scope.ExtraEnvironmentCount
	if count < 1 {
		return partial{}, invalidParam("environments", "at least one environment is required")
	}

	tier, ok := c.cfg.ProductionTiers[count]
	if !ok {
		return partial{}, outOfRange("environments", fmt.Sprintf("no production tier configured for %d environments", count))
	}

	return partial{
		basePrice:      tier.Price,
		estimatedHours: tier.Hours,
	}, nil
}

func (c *Calculator) computeArquiteturaExpress(scope entities.ScopeParameters) (partial, error) {
	if scope.AreaM2 <= 0 {
		return partial{}, invalidParam("area_m2", "must be > 0")
	}

	bands, ok := c.cfg.AreaBands[scope.ProjectKind]
	if !ok {
		return partial{}, invalidParam("project_kind", "must be novo or reforma")
	}

	for _, band := range bands {
		if scope.AreaM2 >= band.MinM2 && scope.AreaM2 <= band.MaxM2 {
			return partial{
				basePrice:      band.PricePerM2 * scope.AreaM2,
				estimatedHours: band.HoursPerM2 * scope.AreaM2,
			}, nil
		}
	}
	// Never extrapolate beyond the configured bands.
	return partial{}, outOfRange("area_m2", fmt.Sprintf("%.2f m² is outside every configured band", scope.AreaM2))
}

func (c *Calculator) finalize(scope entities.ScopeParameters, p partial) (entities.Calculation, error) {
	surveyTotal := 0.0
	switch {
	case scope.ServiceType == entities.ServiceProducao:
		// Producao is always delivered in person.
		surveyTotal = scope.SurveyFee
	case scope.Modality == entities.ModalityPresencial:
		surveyTotal = scope.SurveyFee
	}

	priced := p.basePrice
	if p.adjustedPrice > 0 {
		priced = p.adjustedPrice
	}
	finalPrice := priced + p.extrasTotal + surveyTotal

	discount := 0.0
	maxInstallments := 0
	if scope.PaymentTerms.Mode == entities.PaymentAVista {
		discount = finalPrice * scope.PaymentTerms.DiscountPercent / 100
	} else {
		maxInstallments = c.maxInstallmentsFor(finalPrice)
	}
	priceWithDiscount := finalPrice - discount

	calc := entities.Calculation{
		EstimatedHours:          p.estimatedHours,
		BasePrice:               p.basePrice,
		MultiplierAdjustedPrice: p.adjustedPrice,
		AvgMultiplier:           p.avgMultiplier,
		ExtrasTotal:             p.extrasTotal,
		SurveyFeeTotal:          surveyTotal,
		FinalPrice:              finalPrice,
		Discount:                discount,
		PriceWithDiscount:       priceWithDiscount,
		MaxInstallments:         maxInstallments,
		PerEnvironment:          p.perEnvironment,
	}
	if c.cfg.HourlyRate > 0 {
		calc.ProfitCeilingHours = round2(priceWithDiscount / c.cfg.HourlyRate)
	}
	if scope.Management != nil {
		calc.ManagementMonthlyFee = scope.Management.MonthlyFee
	}
	return calc, nil
}

func (c *Calculator) maxInstallmentsFor(finalPrice float64) int {
	for _, tier := range c.cfg.InstallmentTiers {
		if finalPrice <= tier.UpToPrice {
			return tier.MaxInstallments
		}
	}
	return c.cfg.DefaultMaxInstallments
}

func containsFloat(xs []float64, v float64) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
