package metrics

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// StartTransaction begins a background transaction on the application carried
// by ctx. The returned context carries the transaction, so TraceMethodCall
// segments started from it attach to the transaction. When ctx has no
// application the transaction is nil and all of its methods are no-ops.
func StartTransaction(ctx context.Context, name string) (context.Context, *Transaction) {
	app, ok := applicationFromContext(ctx)
	if !ok {
		return ctx, nil
	}

	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), &Transaction{txn: txn}
}

// Transaction wraps a New Relic transaction started for a unit of CLI work,
// such as a single scan.
type Transaction struct {
	txn *newrelic.Transaction
}

func (t *Transaction) AddAttribute(key string, value interface{}) {
	if t == nil {
		return
	}
	t.txn.AddAttribute(key, value)
}

func (t *Transaction) OnError(err error) {
	if t == nil || err == nil {
		return
	}
	t.txn.NoticeError(err)
}

func (t *Transaction) End() {
	if t == nil {
		return
	}
	t.txn.End()
}

// TraceMethodCall starts a segment named after a component and one of its
// methods. It returns nil, which is safe to use, when ctx has no transaction.
func TraceMethodCall(ctx context.Context, component, method string) *MethodTracer {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}

	return &MethodTracer{
		txn: txn,
		seg: txn.StartSegment(component + " " + method),
	}
}

// MethodTracer is a segment within a transaction.
type MethodTracer struct {
	txn *newrelic.Transaction
	seg *newrelic.Segment
}

func (t *MethodTracer) AddAttribute(key string, value interface{}) {
	if t == nil {
		return
	}
	t.seg.AddAttribute(key, value)
}

// OnError notices err on the enclosing transaction.
func (t *MethodTracer) OnError(err error) {
	if t == nil || err == nil {
		return
	}
	t.txn.NoticeError(err)
}

func (t *MethodTracer) End() {
	if t == nil {
		return
	}
	t.seg.End()
}
