package engine

// Policy decides what a given level of owner participation permits. It is
// deliberately an interface: whether linear proportional scaling or a
// majority-then-unanimous threshold scheme better resists partial credential
// compromise is unsettled, and swapping the answer must not touch the state
// machine.
type Policy interface {
	// SpendCap returns the rolling-sum cap for a spend co-signed by
	// active of total owners against a per-owner limit. Unconditional
	// means full consensus: the cap (and every other restriction the
	// state machine can waive) does not apply.
	SpendCap(active, total int, limitAmount int64) (cap int64, unconditional bool)

	// AllowsStructuralChange reports whether this participation level may
	// change a scope's owner credential or budget configuration.
	AllowsStructuralChange(active, total int) bool

	// AllowsRecoveryStart reports whether this participation level may
	// push a scope into RecoveryPending.
	AllowsRecoveryStart(active, total int) bool

	// AllowsRecoveryComplete reports whether this participation level may
	// finish a pending recovery. The state machine separately decides
	// whether the contestation deadline still applies.
	AllowsRecoveryComplete(active, total int) bool
}

// LinearPolicy scales the spending cap linearly with the number of owners
// who co-signed: one owner is capped at the base limit, two at double, and
// so on. Full consensus overrides every limit.
type LinearPolicy struct{}

// SpendCap implements Policy.
func (LinearPolicy) SpendCap(active, total int, limitAmount int64) (int64, bool) {
	if total > 0 && active == total {
		return 0, true
	}
	return int64(active) * limitAmount, false
}

// AllowsStructuralChange implements Policy: owner or budget mutation needs
// every configured owner.
func (LinearPolicy) AllowsStructuralChange(active, total int) bool {
	return total > 0 && active == total
}

// AllowsRecoveryStart implements Policy: strictly more than half of the
// owners, but not all of them; full consensus has no use for the recovery
// detour, it can act directly.
func (LinearPolicy) AllowsRecoveryStart(active, total int) bool {
	return total > 1 && active > total/2 && active < total
}

// AllowsRecoveryComplete implements Policy: a majority finishes a pending
// recovery.
func (LinearPolicy) AllowsRecoveryComplete(active, total int) bool {
	return total > 0 && active > total/2
}
