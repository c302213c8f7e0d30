// Package store owns the in-memory growth record sequence and mirrors it to
// the growth CSV blob.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"crescita/internal/blob"
	"crescita/internal/core"
	"crescita/internal/log"
	"crescita/internal/metrics"
)

// GrowthStore is the single owner of the record sequence. Mutations are
// serialized with a mutex so concurrent sessions cannot interleave a
// mutate-persist pair. Records stay in insertion order; nothing sorts or
// deduplicates them.
type GrowthStore struct {
	mu       sync.Mutex
	records  []core.GrowthRecord
	blobs    blob.Store
	blobName string
	logger   *log.Logger
}

// New creates a store persisting to the named blob. Call Load before serving.
func New(blobs blob.Store, blobName string, logger *log.Logger) *GrowthStore {
	return &GrowthStore{
		blobs:    blobs,
		blobName: blobName,
		logger:   logger.WithComponent(log.ComponentStore),
	}
}

// Load reads the persisted CSV into memory. A missing or malformed blob is
// recovered silently as an empty dataset; that policy is deliberate, so the
// only trace is a warning log entry and a counter.
func (s *GrowthStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.blobs.ReadText(ctx, s.blobName)
	if err != nil {
		s.records = nil
		metrics.LoadFallbacks.Inc()
		if errors.Is(err, blob.ErrNotFound) {
			s.logger.WarnContext(ctx, "Growth blob missing, starting with empty dataset",
				log.FieldBlobName, s.blobName, log.FieldOperation, log.OpLoad)
		} else {
			s.logger.WarnContext(ctx, "Growth blob unreadable, starting with empty dataset",
				log.FieldBlobName, s.blobName, log.FieldOperation, log.OpLoad, log.FieldError, err.Error())
		}
		return
	}

	records, err := UnmarshalRecords(content)
	if err != nil {
		s.records = nil
		metrics.LoadFallbacks.Inc()
		s.logger.WarnContext(ctx, "Growth blob malformed, starting with empty dataset",
			log.FieldBlobName, s.blobName, log.FieldOperation, log.OpLoad, log.FieldError, err.Error())
		return
	}

	s.records = records
	s.logger.InfoContext(ctx, "Growth records loaded",
		log.FieldBlobName, s.blobName, log.FieldRowCount, len(records))
}

// Add appends a new record computed from the date of birth, measurement date
// and weight, then persists the whole dataset. A measurement date before the
// date of birth yields a negative age and is not rejected. On persist failure
// the in-memory append stands and the error propagates; memory and blob may
// now disagree until the next successful write.
func (s *GrowthStore) Add(ctx context.Context, dob, date core.Date, weightKg float64) (core.GrowthRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := core.NewGrowthRecord(dob, date, weightKg)
	s.records = append(s.records, rec)
	if err := s.persistLocked(ctx); err != nil {
		return rec, err
	}

	s.logger.InfoContext(ctx, "Growth record added",
		log.FieldRecordDate, rec.Date.String(),
		log.FieldAgeDays, rec.AgeDays,
		log.FieldWeightKg, rec.WeightKg,
		log.FieldOperation, log.OpAdd)
	return rec, nil
}

// ReplaceAll swaps the dataset for rows (table edits and row deletions come
// through here) and persists. AgeDays is taken verbatim from the rows: an
// edited Date is NOT re-derived against the date of birth, so Date and
// Age_Days may diverge after a manual edit. Documented behavior, not a bug.
func (s *GrowthStore) ReplaceAll(ctx context.Context, rows []core.GrowthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]core.GrowthRecord(nil), rows...)
	if err := s.persistLocked(ctx); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Growth records replaced",
		log.FieldRowCount, len(rows), log.FieldOperation, log.OpReplace)
	return nil
}

// Records returns a copy of the current dataset in insertion order.
func (s *GrowthStore) Records() []core.GrowthRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.GrowthRecord(nil), s.records...)
}

// Count returns the number of records.
func (s *GrowthStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *GrowthStore) persistLocked(ctx context.Context) error {
	if err := s.blobs.WriteText(ctx, s.blobName, MarshalRecords(s.records)); err != nil {
		metrics.PersistFailures.Inc()
		s.logger.ErrorContext(ctx, "Failed to persist growth records",
			log.FieldBlobName, s.blobName,
			log.FieldOperation, log.OpPersist,
			log.FieldError, err.Error())
		return fmt.Errorf("persist growth records: %w", err)
	}
	return nil
}
