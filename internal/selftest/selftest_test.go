package selftest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dcrodman/blowfish/internal/keycache"
	"github.com/dcrodman/blowfish/internal/vectors"
)

func newTestRunner(t *testing.T) (*Runner, *keycache.Cache, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	log := logrus.New()
	log.Out = &out
	log.Level = logrus.DebugLevel

	cache := keycache.New(-1, time.Minute)
	return NewRunner(log, cache), cache, &out
}

func TestRunner_Run_Builtin(t *testing.T) {
	runner, _, _ := newTestRunner(t)
	all, err := vectors.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	report, err := runner.Run(context.Background(), all)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := report.Err(); err != nil {
		t.Errorf("expected every built-in vector to pass: %v", err)
	}
	if report.Total != len(all) || report.Passed != len(all) {
		t.Errorf("Total = %d, Passed = %d, want both %d", report.Total, report.Passed, len(all))
	}
}

func TestRunner_Run_ReportsFailures(t *testing.T) {
	runner, _, out := newTestRunner(t)
	vs := []vectors.Vector{
		{Name: "good", Key: "0000000000000000", Plaintext: "0000000000000000", Ciphertext: "4ef997456198dd78"},
		{Name: "wrong ciphertext", Key: "0000000000000000", Plaintext: "0000000000000000", Ciphertext: "4ef997456198dd79"},
		{Name: "malformed", Key: "", Plaintext: "0000000000000000", Ciphertext: "0000000000000000"},
	}

	report, err := runner.Run(context.Background(), vs)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Total != 3 || report.Passed != 1 {
		t.Errorf("Total = %d, Passed = %d, want 3 and 1", report.Total, report.Passed)
	}
	if len(report.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %+v", report.Failures)
	}
	if report.Failures[0].Vector != "wrong ciphertext" || !strings.Contains(report.Failures[0].Reason, "EncryptBlock") {
		t.Errorf("unexpected first failure: %+v", report.Failures[0])
	}
	if report.Failures[1].Vector != "malformed" {
		t.Errorf("unexpected second failure: %+v", report.Failures[1])
	}
	if report.Err() == nil {
		t.Errorf("expected Err() to report the failures")
	}
	if !strings.Contains(out.String(), "wrong ciphertext") {
		t.Errorf("expected the failing vector to be logged, got %q", out.String())
	}
}

func TestRunner_Run_ReusesCachedCiphers(t *testing.T) {
	runner, cache, _ := newTestRunner(t)
	vs := []vectors.Vector{
		{Name: "a", Key: "fedcba9876543210", Plaintext: "0123456789abcdef", Ciphertext: "0aceab0fc6a0a28d"},
		{Name: "b", Key: "fedcba9876543210", Plaintext: "ffffffffffffffff", Ciphertext: "6b5c5a9c5d9e0a5a"},
	}

	report, err := runner.Run(context.Background(), vs)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("unexpected failures: %v", err)
	}
	if cache.Len() != 1 {
		t.Errorf("expected one cached cipher for a shared key, got %d", cache.Len())
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	runner, _, _ := newTestRunner(t)
	all, _ := vectors.Builtin()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.Run(ctx, all)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if report.Total != 0 {
		t.Errorf("expected no vectors to run after cancellation, ran %d", report.Total)
	}
}

func TestReport_Err(t *testing.T) {
	if err := (&Report{Total: 2, Passed: 2}).Err(); err != nil {
		t.Errorf("expected nil for a clean report, got %v", err)
	}

	r := &Report{Total: 2, Passed: 1, Failures: []Failure{{Vector: "ecb/1", Reason: "boom"}}}
	if err := r.Err(); err == nil || !strings.Contains(err.Error(), "ecb/1: boom") {
		t.Errorf("unexpected error: %v", err)
	}
}
