package webhook

import (
	"time"

	"signalrelay/internal/executor"
	"signalrelay/pkg/recorder"
	"signalrelay/utils/uuid"
)

func eventFromOutcome(out executor.Outcome, requestId string) recorder.Event {
	now := time.Now()
	e := recorder.Event{
		ID:        uuid.GenULID(now),
		Time:      now.UTC(),
		RequestId: requestId,
		Ticker:    out.Signal.Ticker,
		Action:    string(out.Signal.Action),
		ElapsedMs: out.Elapsed.Milliseconds(),
	}
	if out.Decision.Kind != 0 {
		e.Decision = out.Decision.Kind.String()
	}
	if out.Decision.PlacesOrder() {
		e.Quantity = out.Decision.Quantity.String()
		e.Price = out.Decision.Price.String()
	}
	if out.Snapshot.Position != nil {
		e.PnL = out.Snapshot.UnrealizedPnL.String()
	}
	if out.Order != nil {
		e.OrderId = out.Order.OrderId
	}
	if out.Err != nil {
		e.Error = out.Err.Error()
	}
	return e
}
