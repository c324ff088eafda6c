package services

import (
	"encoding/json"
	"time"

	"github.com/olahol/melody"
)

// BroadcastSummary pushes a refreshed summary to every connected dashboard so
// open consoles update without polling.
func BroadcastSummary(m *melody.Melody, snapshot *Snapshot) error {
	payload := map[string]interface{}{
		"type":        "summary_refreshed",
		"refreshedAt": snapshot.RefreshedAt.Format(time.RFC3339),
		"summary":     snapshot.Summary,
	}
	if snapshot.FromDate != nil {
		payload["fromDate"] = snapshot.FromDate.Format("2006-01-02")
	}
	if snapshot.ToDate != nil {
		payload["toDate"] = snapshot.ToDate.Format("2006-01-02")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return m.Broadcast(b)
}
