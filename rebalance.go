package rebalance

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Option configures Rebalance.
type Option func(*options)

type options struct {
	logger               *zap.SugaredLogger
	rejectOverWithdrawal bool
}

// WithLogger traces every step of the water-filling walk at debug level.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

// RejectOverWithdrawal makes Rebalance fail with ErrOverWithdrawal when the contribution
// would take the portfolio below zero. By default such a withdrawal is computed and may
// oversell some positions.
func RejectOverWithdrawal() Option {
	return func(o *options) { o.rejectOverWithdrawal = true }
}

// Allocation is the outcome of a Rebalance.
type Allocation struct {
	Contribution   Fraction
	PortfolioTotal Fraction   // sum of current values
	GrandTotal     Fraction   // PortfolioTotal + Contribution
	Level          Fraction   // common deviation reached by every funded position
	Stop           int        // Positions[:Stop] are funded
	Positions      []Position // in fill order
}

// InputOrder returns the positions in the order the assets were given.
func (a *Allocation) InputOrder() []Position {
	res := slices.Clone(a.Positions)
	slices.SortFunc(res, func(x, y Position) int { return x.Index - y.Index })
	return res
}

// TotalDelta returns the sum of all deltas. It is always equal to Contribution.
func (a *Allocation) TotalDelta() Fraction {
	var sum Fraction
	for _, p := range a.Positions {
		sum = sum.Add(p.Delta)
	}
	return sum
}

// Rebalance distributes contribution across assets without selling anything to buy anything
// else: deposits go to the most underweight assets first, withdrawals come from the most
// overweight ones first.
//
// Deviations are measured against each asset's share of the post-contribution total. The
// most deviating asset is brought level with the next one, then both are moved together to
// the third one, and so on until the contribution is exhausted. Funded positions all end up
// on the same deviation, the Allocation's Level.
//
// assets is not modified.
func Rebalance(contribution Fraction, assets []Asset, opts ...Option) (*Allocation, error) {
	o := options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(assets) == 0 {
		if !contribution.IsZero() {
			return nil, ErrEmptyPortfolio
		}
		return &Allocation{Contribution: contribution}, nil
	}

	var total Fraction
	for _, a := range assets {
		total = total.Add(a.value)
	}
	grand := total.Add(contribution)
	if o.rejectOverWithdrawal && grand.IsNegative() {
		return nil, fmt.Errorf("%w: withdrawing %s out of %s", ErrOverWithdrawal, contribution.Neg().StringFixed(2), total.StringFixed(2))
	}

	positions := make([]Position, len(assets))
	for i, a := range assets {
		tv := grand.Mul(a.target)
		if tv.IsZero() {
			return nil, fmt.Errorf("%w: %q", ErrDegenerateTarget, a.name)
		}
		p := Position{
			Asset:       a,
			Index:       i,
			TargetValue: tv,
			Deviation:   a.value.Div(tv).Sub(F(1)),
		}
		if total.IsPositive() {
			p.ActualAllocation = a.value.Div(total)
		}
		positions[i] = p
	}

	// ties keep the input order, for withdrawals too.
	withdrawal := contribution.IsNegative()
	slices.SortStableFunc(positions, func(x, y Position) int {
		if withdrawal {
			return y.Deviation.Cmp(x.Deviation)
		}
		return x.Deviation.Cmp(y.Deviation)
	})

	state := fillState{remaining: contribution}
	for i := range positions {
		if state = state.step(positions, i); state.done {
			break
		}
		o.logger.Debugw("group raised to next tier",
			"asset", positions[i].name,
			"level", state.level.StringFixed(6),
			"cumulative", state.cumulative.StringFixed(2),
			"remaining", state.remaining.StringFixed(2),
		)
	}
	o.logger.Debugw("walk stopped",
		"stop", state.stop,
		"level", state.level.StringFixed(6),
	)

	for i := range positions[:state.stop] {
		p := &positions[i]
		// moves value/targetValue - 1 exactly to level.
		p.Delta = p.TargetValue.Mul(state.level.Sub(p.Deviation))
		p.Funded = true
	}

	return &Allocation{
		Contribution:   contribution,
		PortfolioTotal: total,
		GrandTotal:     grand,
		Level:          state.level,
		Stop:           state.stop,
		Positions:      positions,
	}, nil
}

// fillState is the state of the water-filling walk after a step.
type fillState struct {
	cumulative Fraction // sum of the target values of the group
	remaining  Fraction // contribution not assigned yet
	level      Fraction // deviation the group has been moved to
	stop       int
	done       bool
}

// step moves the group positions[:i+1] towards the deviation of positions[i+1].
func (s fillState) step(positions []Position, i int) fillState {
	if s.remaining.IsZero() {
		s.done = true
		return s
	}
	p := positions[i]
	s.stop = i + 1
	s.cumulative = s.cumulative.Add(p.TargetValue)

	if i == len(positions)-1 {
		// No next tier: the group absorbs what is left. When targets sum to 1 this lands
		// exactly on 0.
		return s.partial(p.Deviation)
	}

	next := positions[i+1].Deviation
	cost := s.cumulative.Mul(next.Sub(p.Deviation))
	if cost.Abs().GreaterThan(s.remaining.Abs()) {
		return s.partial(p.Deviation)
	}
	s.remaining = s.remaining.Sub(cost)
	s.level = next
	return s
}

// partial spends all the remaining contribution on the group, starting from deviation.
func (s fillState) partial(deviation Fraction) fillState {
	s.level = deviation.Add(s.remaining.Div(s.cumulative))
	s.remaining = Fraction{}
	s.done = true
	return s
}
