package game

// Counter tracks the last applied event sequence number. Events carry a
// monotonic counter; one that does not advance past the stored value is a
// stale or duplicate delivery and must be discarded.
type Counter struct {
	value uint64
	set   bool
}

// Stale reports whether an incoming counter must be discarded. A missing
// incoming counter or an unset stored counter never makes an event stale.
// Equal counters mean re-delivery of an already applied event.
func (c *Counter) Stale(incoming *uint64) bool {
	if incoming == nil || !c.set {
		return false
	}
	return *incoming <= c.value
}

// Observe records a freshly applied counter. Older values never lower the
// stored one.
func (c *Counter) Observe(incoming *uint64) {
	if incoming == nil {
		return
	}
	if !c.set || *incoming > c.value {
		c.value = *incoming
		c.set = true
	}
}

// Last returns the stored counter and whether one has been applied yet.
func (c *Counter) Last() (uint64, bool) {
	return c.value, c.set
}
