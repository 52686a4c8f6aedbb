package tabular

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var (
	ErrVerificationTimeout = errors.New("appended row not visible before verification timeout")
	errNotVisible          = errors.New("not visible yet")
)

// RetryPolicy bounds the read-back loop run after an append.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Timeout         time.Duration
}

// WaitFor polls check with exponential backoff until it reports true, it
// fails, ctx ends or the policy timeout elapses (ErrVerificationTimeout).
func WaitFor(ctx context.Context, p RetryPolicy, check func(context.Context) (bool, error)) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.MaxElapsedTime = p.Timeout
	b.Reset()

	err := backoff.Retry(func() error {
		ok, err := check(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !ok {
			return errNotVisible
		}
		return nil
	}, backoff.WithContext(b, ctx))

	if errors.Is(err, errNotVisible) {
		return ErrVerificationTimeout
	}
	return err
}

// Wait is WaitFor bound to the policy.
func (p RetryPolicy) Wait(ctx context.Context, check func(context.Context) (bool, error)) error {
	return WaitFor(ctx, p, check)
}
