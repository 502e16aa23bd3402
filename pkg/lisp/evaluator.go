package lisp

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wavesplatform/golisp/pkg/logging"
)

// Evaluator reduces expression trees to values. It holds no per-evaluation state and is safe for concurrent use.
type Evaluator struct {
	logger      *zap.Logger
	checkLogger *zap.Logger
	metrics     *Metrics
	check       bool
	concurrency int
}

type Option func(*Evaluator) error

func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) error {
		if logger == nil {
			return errors.New("empty logger")
		}
		e.logger = logger.Named(logging.EvaluatorNamespace)
		e.checkLogger = logger.Named(logging.CheckerNamespace)
		return nil
	}
}

func WithMetrics(m *Metrics) Option {
	return func(e *Evaluator) error {
		e.metrics = m
		return nil
	}
}

// WithoutCheck skips the checker pass before evaluation. Nodes are still validated as they are evaluated.
func WithoutCheck() Option {
	return func(e *Evaluator) error {
		e.check = false
		return nil
	}
}

// WithConcurrency limits the number of trees EvaluateBatch evaluates at once.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) error {
		if n < 1 {
			return errors.Errorf("invalid concurrency %d", n)
		}
		e.concurrency = n
		return nil
	}
}

func NewEvaluator(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		logger:      zap.NewNop(),
		checkLogger: zap.NewNop(),
		check:       true,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, errors.Wrap(err, "failed to create evaluator")
		}
	}
	return e, nil
}

var defaultEvaluator = &Evaluator{
	logger:      zap.NewNop(),
	checkLogger: zap.NewNop(),
	check:       true,
	concurrency: runtime.GOMAXPROCS(0),
}

// Evaluate checks and evaluates the tree rooted at n with the default evaluator.
func Evaluate(n Node) (Value, error) {
	return defaultEvaluator.Evaluate(n)
}

func (e *Evaluator) Evaluate(n Node) (Value, error) {
	start := time.Now()
	op := operatorOf(n)
	if e.check {
		if err := Check(n); err != nil {
			e.metrics.observeCheckFailure(err)
			e.metrics.observeEvaluation(op, start, err)
			e.checkLogger.Debug("Check failed", zap.Stringer("operator", op), logging.Error(err))
			return nil, err
		}
	}
	v, err := e.walk(n)
	e.metrics.observeEvaluation(op, start, err)
	if err != nil {
		e.logger.Debug("Evaluation failed", zap.Stringer("operator", op),
			zap.Strings("path", ErrorPath(err)), logging.ErrorTrace(err))
		return nil, err
	}
	return v, nil
}

func (e *Evaluator) walk(n Node) (Value, error) {
	var (
		v   Value
		err error
	)
	switch t := n.(type) {
	case *ArithmeticNode:
		if t == nil {
			return nil, ArityMismatch.New(0, "empty arithmetic expression")
		}
		v, err = arithmetic(t)
	case *ComparatorNode:
		if t == nil {
			return nil, ArityMismatch.New(0, "empty comparator expression")
		}
		v, err = compare(t)
	case *LogicalNode:
		if t == nil {
			return nil, ArityMismatch.New(0, "empty logical expression")
		}
		v, err = logical(t)
	case *IfNode:
		if t == nil {
			return nil, ArityMismatch.New(If, "empty conditional expression")
		}
		v, err = e.conditional(t)
	case nil:
		return nil, ArityMismatch.New(0, "empty expression")
	default:
		return nil, InvalidOperation.Errorf(0, "unsupported type of node '%T'", n)
	}
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Node evaluated", zap.Stringer("operator", n.Operator()), zap.Stringer("result", v))
	return v, nil
}

func (e *Evaluator) conditional(n *IfNode) (Value, error) {
	if err := checkIfShape(n); err != nil {
		return nil, err
	}
	var condition bool
	switch b := n.Branch.(type) {
	case *BooleanBranch:
		condition = b.Condition
	case *ExpressionBranch:
		r, err := e.walk(b.Condition)
		if err != nil {
			return nil, pushFrame(err, "If.condition")
		}
		c, ok := r.(Boolean)
		if !ok {
			return nil, KindMismatch.Errorf(If, "condition evaluated to kind '%s', expected 'Boolean'", r.Kind())
		}
		condition = bool(c)
	default:
		return nil, InvalidOperation.Errorf(If, "unsupported type of branch '%T'", n.Branch)
	}
	then, els := n.Branch.branches()
	chosen := els
	if condition {
		chosen = then
	}
	r, err := e.walk(chosen)
	if err != nil {
		return nil, pushFrame(err, "If.%s", branchName(condition))
	}
	if r.Kind() != n.Result {
		return nil, KindMismatch.Errorf(If, "%s branch evaluated to kind '%s' but result kind is '%s'", branchName(condition), r.Kind(), n.Result)
	}
	return r, nil
}
