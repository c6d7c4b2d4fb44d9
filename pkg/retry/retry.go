// Package retry runs an action until it succeeds or a Strategy gives up.
package retry

// Action is a unit of work that may be attempted more than once.
type Action func() error

// Retrier runs actions under a fixed set of strategies.
type Retrier interface {
	Retry(action Action) (uint, error)
}

type retrier struct {
	strategies []Strategy
}

// NewRetrier binds strategies for reuse across calls, for example by an RPC
// client retrying every request the same way.
func NewRetrier(strategies ...Strategy) Retrier {
	return &retrier{strategies: strategies}
}

func (r *retrier) Retry(action Action) (uint, error) {
	return Retry(action, r.strategies...)
}

// Retry runs action until it returns nil or any strategy declines another
// attempt, returning the number of attempts made and the last error.
// Strategies are consulted in order, so strategies that sleep belong last.
// Without strategies Retry loops until action succeeds.
func Retry(action Action, strategies ...Strategy) (uint, error) {
	var attempt uint
	for {
		attempt++

		err := action()
		if err == nil {
			return attempt, nil
		}

		for _, strategy := range strategies {
			if !strategy(attempt, err) {
				return attempt, err
			}
		}
	}
}
