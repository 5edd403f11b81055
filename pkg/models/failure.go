package models

// Failure classes assigned by the self-heal classifier.
const (
	FailureSelector  = "selector"
	FailureTimeout   = "timeout"
	FailureWallet    = "wallet"
	FailureAssertion = "assertion"
	FailureNetwork   = "network"
	FailureUnknown   = "unknown"
)

// FailureContext is the snapshot handed to the generator when a spec
// is regenerated, and persisted on the new spec row.
type FailureContext struct {
	RunID        string   `json:"run_id"`
	PreviousCode string   `json:"previous_code"`
	Error        string   `json:"error"`
	Logs         string   `json:"logs"`
	FailureClass string   `json:"failure_class"`
	DappURL      string   `json:"dapp_url,omitempty"`
	Screenshots  []string `json:"screenshots,omitempty"`
}

// ToMap converts the context into the loosely typed form ent stores.
func (f FailureContext) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"run_id":        f.RunID,
		"previous_code": f.PreviousCode,
		"error":         f.Error,
		"logs":          f.Logs,
		"failure_class": f.FailureClass,
	}
	if f.DappURL != "" {
		m["dapp_url"] = f.DappURL
	}
	if len(f.Screenshots) > 0 {
		shots := make([]interface{}, 0, len(f.Screenshots))
		for _, s := range f.Screenshots {
			shots = append(shots, s)
		}
		m["screenshots"] = shots
	}
	return m
}
