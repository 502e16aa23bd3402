package lisp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
)

func TestEvaluateBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, concurrency := range []int{1, 2, 8} {
		e, err := NewEvaluator(WithConcurrency(concurrency))
		require.NoError(t, err)
		nodes := []Node{
			arith(Plus, KindNumber, nums(1, 2, 3)),
			arith(Divide, KindNumber, nums(1, 0)),
			cmpr(LessThan, nums(1, 2, 3)),
			logic(And, bools(true)),
			ifLiteral(KindNumber, false, arith(Divide, KindNumber, nums(1, 0)), arith(Plus, KindNumber, nums(5))),
		}
		rs, err := e.EvaluateBatch(context.Background(), nodes)
		require.NoError(t, err)
		require.Len(t, rs, len(nodes))
		assert.Equal(t, []Value{Number(6), nil, Boolean(true), nil, Number(5)}, rs.Values())
		assert.Equal(t, DivisionByZero, GetErrorType(rs[1].Err))
		assert.Equal(t, ArityMismatch, GetErrorType(rs[3].Err))

		errs := multierr.Errors(rs.Err())
		require.Len(t, errs, 2)
		assert.Contains(t, errs[0].Error(), "expression 1")
		assert.Contains(t, errs[1].Error(), "expression 3")
		assert.Equal(t, DivisionByZero, GetErrorType(errs[0]))
	}
}

func TestEvaluateBatchEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)

	rs, err := defaultEvaluator.EvaluateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rs)
	assert.NoError(t, rs.Err())
}

func TestEvaluateBatchCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rs, err := defaultEvaluator.EvaluateBatch(ctx, []Node{arith(Plus, KindNumber, nums(1, 2))})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rs)
}

func TestEvaluateContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := defaultEvaluator.EvaluateContext(context.Background(), arith(Power, KindNumber, nums(2, 10)))
	require.NoError(t, err)
	assert.Equal(t, Number(1024), r)

	_, err = defaultEvaluator.EvaluateContext(context.Background(), arith(Modulus, KindNumber, nums(7, 0)))
	assert.Equal(t, DivisionByZero, GetErrorType(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = defaultEvaluator.EvaluateContext(ctx, arith(Plus, KindNumber, nums(1)))
	assert.ErrorIs(t, err, context.Canceled)
}
