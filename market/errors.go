// SPDX-License-Identifier: MIT

package market

import "errors"

var (
	// ErrNilInstance is returned when a nil *Instance is validated.
	ErrNilInstance = errors.New("market: nil instance")

	// ErrNoPorts indicates an instance without a home port.
	ErrNoPorts = errors.New("market: instance has no ports")

	// ErrPortCount indicates len(Items) != len(Dist).
	ErrPortCount = errors.New("market: item table and distance table disagree on port count")

	// ErrRaggedItems indicates ports offering a different number of item types.
	ErrRaggedItems = errors.New("market: item tables have different lengths")

	// ErrNegativeWeight indicates an item with weight < 0.
	ErrNegativeWeight = errors.New("market: negative item weight")

	// ErrNaNItem indicates an item field that is NaN.
	ErrNaNItem = errors.New("market: NaN in item table")

	// ErrBadBudget indicates a negative, NaN or infinite T_max, C_max, K0 or K_min.
	ErrBadBudget = errors.New("market: invalid budget parameter")

	// ErrPlanShape indicates a plan whose route and stops do not line up.
	ErrPlanShape = errors.New("market: malformed plan")

	// ErrPlanTime indicates a plan step that breaks the time-feasibility rule.
	ErrPlanTime = errors.New("market: plan exceeds time budget")

	// ErrPlanCargo indicates a plan that sells cargo it does not hold,
	// buys a type twice in one stop, or misstates an item.
	ErrPlanCargo = errors.New("market: inconsistent cargo in plan")

	// ErrPlanCapacity indicates a plan that overloads the hold.
	ErrPlanCapacity = errors.New("market: plan exceeds cargo capacity")

	// ErrPlanReserve indicates a departure with capital below the reserve.
	ErrPlanReserve = errors.New("market: plan breaches reserve capital")

	// ErrPlanCapital indicates a recorded capital that differs from the replay.
	ErrPlanCapital = errors.New("market: plan capital does not match replay")
)
