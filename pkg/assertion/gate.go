package assertion

// Gate is the enforcement state of a process. It is immutable once created.
type Gate struct {
	available bool
	enabled   bool
}

// NewGate resolves the enforcement state from cfg.
func NewGate(cfg Config) Gate {
	return Gate{available: cfg.Available, enabled: cfg.Enabled}
}

// IdentityChecks reports whether descriptor checks are active.
func (g Gate) IdentityChecks() bool {
	return g.available
}

// StringChecks reports whether string checks are active.
func (g Gate) StringChecks() bool {
	return g.available && g.enabled
}
