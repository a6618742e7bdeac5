package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--driver", "sqlite", "--sqlite-path", dbPath, "--log-level", "error"}, args...))

	err := root.Execute()
	return out.String(), err
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DATABASE_URL", "SQLITE_PATH", "SPLIT_REMAINDER_POLICY", "SPLIT_PERCENTAGE_POLICY", "CHAT_RECENT_EXPENSES", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}
}

func TestSeedAndBalances(t *testing.T) {
	clearEnv(t)
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	if _, err := run(t, dbPath, "migrate"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	out, err := run(t, dbPath, "seed")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	var seeded struct {
		Users  []int64 `json:"users"`
		Groups []int64 `json:"groups"`
	}
	if err := json.Unmarshal([]byte(out), &seeded); err != nil {
		t.Fatalf("seed output %q: %v", out, err)
	}
	if len(seeded.Users) != 4 || len(seeded.Groups) != 3 {
		t.Fatalf("seeded = %+v", seeded)
	}

	if _, err := run(t, dbPath, "seed"); err == nil {
		t.Error("second seed succeeded, want already seeded error")
	}

	out, err = run(t, dbPath, "balances", "group", "1")
	if err != nil {
		t.Fatalf("balances group: %v", err)
	}
	var balances []struct {
		Debtor   string  `json:"debtor"`
		Creditor string  `json:"creditor"`
		Amount   float64 `json:"amount"`
	}
	if err := json.Unmarshal([]byte(out), &balances); err != nil {
		t.Fatalf("balances output %q: %v", out, err)
	}
	if len(balances) != 3 || balances[0].Debtor != "Bob Smith" || balances[0].Amount != 52 {
		t.Errorf("balances = %+v", balances)
	}

	out, err = run(t, dbPath, "balances", "user", "4")
	if err != nil {
		t.Fatalf("balances user: %v", err)
	}
	if !strings.Contains(out, `"group_name": "Office Lunch"`) {
		t.Errorf("user balances = %s, want the office lunch", out)
	}

	out, err = run(t, dbPath, "context", "--user", "1")
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if !strings.Contains(out, `"user_balances"`) || !strings.Contains(out, `"Hotel booking"`) {
		t.Errorf("context = %s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	clearEnv(t)
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	tests := []struct {
		name string
		args []string
	}{
		{name: "non numeric id", args: []string{"balances", "group", "abc"}},
		{name: "missing id", args: []string{"balances", "user"}},
		{name: "unknown group", args: []string{"balances", "group", "42"}},
		{name: "unknown user context", args: []string{"context", "--user", "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, dbPath, tt.args...)
			if err == nil {
				t.Fatalf("splitctl %v succeeded, want error", tt.args)
			}
			if n := strings.Count(out, "Error:"); n != 1 {
				t.Errorf("error printed %d times, want once: %q", n, out)
			}
			if strings.Contains(out, "Usage:") {
				t.Errorf("usage printed on error: %q", out)
			}
		})
	}
}

func TestMigrateDown(t *testing.T) {
	clearEnv(t)
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	if _, err := run(t, dbPath, "migrate"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	out, err := run(t, dbPath, "migrate", "--down")
	if err != nil {
		t.Fatalf("migrate --down: %v", err)
	}
	if !strings.Contains(out, "rolled back") {
		t.Errorf("output = %q", out)
	}
}
