package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

var (
	spouseAllowanceRate        = decimal.RequireFromString("0.15")
	perChildAllowanceRate      = decimal.RequireFromString("0.10")
	perParentAllowanceRate     = decimal.RequireFromString("0.10")
	welfareAidRate             = decimal.RequireFromString("0.15")
	singleParentWelfareAidRate = decimal.RequireFromString("0.10")
)

// AllowanceRates determines the allowance rates for a household. Spouse and children
// allowances stack. Parent allowances and welfare aid only apply when there is
// neither spouse nor children: no parents earns 15% aid, a single parent earns an
// extra 10% on top of its own 10%, and two parents earn only their 2x10%.
func AllowanceRates(children, dependentParents int, hasSpouse bool) domain.Allowances {
	d := domain.Dependents{HasSpouse: hasSpouse, Children: children, DependentParents: dependentParents}
	children = d.ChildrenForAllowance()
	parents := d.ParentsForAllowance()

	var a domain.Allowances
	if hasSpouse {
		a.SpouseRate = spouseAllowanceRate
	}
	if children > 0 {
		a.ChildrenRate = perChildAllowanceRate.Mul(decimal.NewFromInt(int64(children)))
	}
	if hasSpouse || children > 0 {
		return a
	}

	a.ParentsRate = perParentAllowanceRate.Mul(decimal.NewFromInt(int64(parents)))
	switch parents {
	case 0:
		a.WelfareAidRate = welfareAidRate
	case 1:
		a.WelfareAidRate = singleParentWelfareAidRate
	}
	return a
}

// ApplyAllowances computes the allowance amount over the annual subtotal
func ApplyAllowances(subtotal decimal.Decimal, children, dependentParents int, hasSpouse bool) domain.Allowances {
	a := AllowanceRates(children, dependentParents, hasSpouse)
	a.AnnualAmount = subtotal.Mul(a.TotalRate())
	return a
}
