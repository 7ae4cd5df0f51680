package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus Status
		wantIndex  CheckResult
	}{
		{name: "all healthy", pingErr: nil, wantStatus: Healthy, wantIndex: CheckOK},
		{name: "index down", pingErr: errors.New("connection refused"), wantStatus: Degraded, wantIndex: CheckError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&mockPinger{err: tt.pingErr})

			report := svc.Check(context.Background())
			if report.Status != tt.wantStatus {
				t.Errorf("status: expected %s, got %s", tt.wantStatus, report.Status)
			}
			if report.Checks["index"] != tt.wantIndex {
				t.Errorf("index check: expected %s, got %s", tt.wantIndex, report.Checks["index"])
			}
		})
	}
}
