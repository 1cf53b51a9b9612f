// Package selftest checks the cipher against a catalogue of known-answer
// vectors.
package selftest

import (
	"bytes"
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/dcrodman/blowfish/internal/keycache"
	"github.com/dcrodman/blowfish/internal/vectors"
	"github.com/dcrodman/blowfish/pkg/blowfish"
)

// Failure describes one vector that did not check out.
type Failure struct {
	Vector string
	Reason string
}

// Report is the outcome of a Run.
type Report struct {
	Total    int
	Passed   int
	Failures []Failure
}

// Err returns a non-nil error if any vector failed.
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d vectors failed, first: %s: %s",
		len(r.Failures), r.Total, r.Failures[0].Vector, r.Failures[0].Reason)
}

// Runner checks vectors, reusing scheduled ciphers from its cache.
type Runner struct {
	log     *logrus.Logger
	ciphers *keycache.Cache
}

func NewRunner(log *logrus.Logger, ciphers *keycache.Cache) *Runner {
	return &Runner{log: log, ciphers: ciphers}
}

// Run checks every vector in order. It stops early, returning the partial
// report along with the context's error, if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, vs []vectors.Vector) (*Report, error) {
	report := &Report{}
	for _, v := range vs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Total++
		if reason := r.check(v); reason != "" {
			report.Failures = append(report.Failures, Failure{Vector: v.Name, Reason: reason})
			r.log.WithFields(logrus.Fields{"vector": v.Name}).Warn(reason)
			r.log.Debug(spew.Sdump(v))
			continue
		}
		report.Passed++
		r.log.WithFields(logrus.Fields{"vector": v.Name}).Debug("ok")
	}

	r.log.WithFields(logrus.Fields{
		"total":  report.Total,
		"passed": report.Passed,
		"cached": r.ciphers.Len(),
	}).Info("self-test finished")
	return report, nil
}

// check returns an empty string if v passes, otherwise a description of
// the first mismatch.
func (r *Runner) check(v vectors.Vector) string {
	d, err := v.Decode()
	if err != nil {
		return err.Error()
	}

	c, err := r.ciphers.Get(d.Key)
	if err != nil {
		return fmt.Sprintf("scheduling key: %v", err)
	}

	if l, rr := c.EncryptBlock(d.Plaintext[0], d.Plaintext[1]); [2]uint32{l, rr} != d.Ciphertext {
		return fmt.Sprintf("EncryptBlock = %08x%08x, want %s", l, rr, v.Ciphertext)
	}
	if l, rr := c.DecryptBlock(d.Ciphertext[0], d.Ciphertext[1]); [2]uint32{l, rr} != d.Plaintext {
		return fmt.Sprintf("DecryptBlock = %08x%08x, want %s", l, rr, v.Plaintext)
	}

	// The buffer transform has to agree with the block transform.
	buf := vectors.Bytes(d.Plaintext)
	c.Encrypt(buf, buf, blowfish.BlockSize)
	if !bytes.Equal(buf, vectors.Bytes(d.Ciphertext)) {
		return fmt.Sprintf("Encrypt = %x, want %s", buf, v.Ciphertext)
	}
	c.Decrypt(buf, buf, blowfish.BlockSize)
	if !bytes.Equal(buf, vectors.Bytes(d.Plaintext)) {
		return fmt.Sprintf("Decrypt = %x, want %s", buf, v.Plaintext)
	}
	return ""
}
