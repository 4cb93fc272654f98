package store

import (
	"context"
	"errors"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
)

// Status is the lifecycle of one operation family (list/add/update/delete).
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// OpState is one family's status plus the last user-facing error message.
type OpState struct {
	Status Status
	Err    string
}

func (o OpState) Loading() bool { return o.Status == StatusLoading }
func (o OpState) Failed() bool  { return o.Status == StatusFailed }

// ErrInFlight: aynı aileden ikinci istek; sayfa butonu disable etmeyi
// unutsa bile duplicate submit burada durur.
var ErrInFlight = errors.New("store: operation already in flight")

// canceled reports a request torn down by its page; the result is ignored
// instead of being surfaced as a failure.
func canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func errMessage(err error) string {
	return apperr.PublicMessage(err)
}
