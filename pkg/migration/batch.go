package migration

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/jhahn/go-otpauth/pkg/otpauth"
)

// Split partitions records into migration batches of at most maxPerBatch
// records each. Every chunk carries the total chunk count as BatchSize,
// its 0-based position as BatchIndex, and the shared batchID, so a
// consumer scanning the chunks in index order reassembles the original
// sequence. The split is deterministic and preserves record order.
func Split(params []otpauth.Params, maxPerBatch, batchID int) ([]*Batch, error) {
	if maxPerBatch <= 0 {
		return nil, fmt.Errorf("migration: max records per batch must be positive, got %d", maxPerBatch)
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("migration: no records to export")
	}

	n := (len(params) + maxPerBatch - 1) / maxPerBatch
	batches := make([]*Batch, 0, n)
	for i := 0; i < n; i++ {
		lo := i * maxPerBatch
		hi := lo + maxPerBatch
		if hi > len(params) {
			hi = len(params)
		}
		batches = append(batches, &Batch{
			Params:     append([]otpauth.Params(nil), params[lo:hi]...),
			Version:    DefaultVersion,
			BatchSize:  n,
			BatchIndex: i,
			BatchID:    batchID,
		})
	}
	return batches, nil
}

// NewBatchID returns a random positive identifier for a fresh export.
// Split takes the ID as an argument so re-running an export with the same
// ID is reproducible.
func NewBatchID() (int, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("migration: failed to generate batch id: %w", err)
	}
	return int(binary.BigEndian.Uint32(buf[:]) & 0x7fffffff), nil
}
