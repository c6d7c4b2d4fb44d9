package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithoutApplication(t *testing.T) {
	ctx := context.Background()

	RecordCount(ctx, "programctl.scan.decoded", 1)
	RecordDuration(ctx, "programctl.scan.duration", time.Second)
	RecordEvent(ctx, "scan", map[string]interface{}{"program": "dlmm"})

	txnCtx, txn := StartTransaction(ctx, "scan")
	assert.Nil(t, txn)
	assert.Equal(t, ctx, txnCtx)

	txn.AddAttribute("kind", "position")
	txn.OnError(errors.New("failed"))
	txn.End()

	tracer := TraceMethodCall(txnCtx, "solana.decoder.scanner", "ScanKeys")
	assert.Nil(t, tracer)

	tracer.AddAttribute("keys", 10)
	tracer.OnError(errors.New("failed"))
	tracer.End()
}

func TestFlattenEntry(t *testing.T) {
	e := logrus.NewEntry(logrus.StandardLogger())
	e.Message = "scan complete"
	assert.Equal(t, "scan complete", flattenEntry(e))

	e = e.WithField("decoded", 3).WithError(errors.New("rpc unavailable"))
	e.Message = "scan failed"
	assert.Equal(t, `message="scan failed", error="rpc unavailable", data={"decoded":3}`, flattenEntry(e))

	e = logrus.NewEntry(logrus.StandardLogger()).WithField("program", "dlmm")
	e.Message = "watching"
	require.Equal(t, `message="watching", error=<nil>, data={"program":"dlmm"}`, flattenEntry(e))
}
