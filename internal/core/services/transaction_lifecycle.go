package services

import "fmt"

// Stage is a step of the transaction lifecycle.
type Stage string

const (
	StagePending          Stage = "PENDING"
	StageReceiptUploaded  Stage = "RECEIPT_UPLOADED"
	StagePersisted        Stage = "PERSISTED"
	StageBankSynced       Stage = "BANK_SYNCED"
	StageLedgerRecomputed Stage = "LEDGER_RECOMPUTED"
	StageAudited          Stage = "AUDITED"
	StageDone             Stage = "DONE"
	StageFailed           Stage = "FAILED"
)

// durable reports whether a failure after s leaves writes in the store.
func (s Stage) durable() bool {
	switch s {
	case StagePersisted, StageBankSynced, StageLedgerRecomputed, StageAudited:
		return true
	}
	return false
}

// StageError is returned by every failed lifecycle operation. Stage is the
// last stage that completed before the failure.
type StageError struct {
	Operation string
	Stage     Stage
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s transaction failed after %s: %v", e.Operation, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Partial reports whether the failure happened after the transaction record
// was written. Such failures are not rolled back and need a retry or a
// ledger recompute.
func (e *StageError) Partial() bool {
	return e.Stage.durable()
}

// lifecycle tracks one operation through its stages.
type lifecycle struct {
	operation string
	stage     Stage
}

func newLifecycle(operation string) *lifecycle {
	return &lifecycle{operation: operation, stage: StagePending}
}

func (l *lifecycle) advance(s Stage) {
	l.stage = s
}

func (l *lifecycle) fail(err error) error {
	return &StageError{Operation: l.operation, Stage: l.stage, Err: err}
}
