package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPoolStats_JSONShape(t *testing.T) {
	// The health endpoint exposes these field names to monitoring; keep them
	// stable.
	stats := &PoolStats{
		TotalConns:      10,
		IdleConns:       5,
		AcquiredConns:   5,
		MaxConns:        20,
		AcquireCount:    100,
		AcquireDuration: "1.5s",
		Healthy:         true,
	}

	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal pool stats: %v", err)
	}

	for _, key := range []string{
		`"total_conns":10`,
		`"idle_conns":5`,
		`"acquired_conns":5`,
		`"max_conns":20`,
		`"acquire_count":100`,
		`"acquire_duration":"1.5s"`,
		`"healthy":true`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected %s in %s", key, data)
		}
	}
}
