// Package sync holds the orchestrator of one synchronization run: fetch a
// page of trade-intervention records, decide insert/update/skip per record,
// apply the minimal write, and record every decision in the session audit
// log.
package sync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "gtasync/internal/domain/gta"
	"gtasync/internal/errs"
	"gtasync/internal/ports"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

type nowFunc func() time.Time

func defaultNow() time.Time { return time.Now().UTC() }

// Summary is the aggregate result of one run. Every record the run looked
// at counts as processed, including skips and per-record failures.
type Summary struct {
	Inserted         int
	Updated          int
	Skipped          int
	Failed           int
	RecordsProcessed int
	ElapsedSeconds   float64
}

type Service struct {
	records  ports.InterventionRepository
	settings ports.SettingsStore
	remote   ports.RemoteSource
	uow      ports.UnitOfWork
	audit    *AuditLogger
	now      nowFunc
}

func NewService(
	records ports.InterventionRepository,
	sink ports.SyncLogSink,
	settings ports.SettingsStore,
	remote ports.RemoteSource,
	uow ports.UnitOfWork,
) *Service {
	return &Service{
		records:  records,
		settings: settings,
		remote:   remote,
		uow:      uow,
		audit:    NewAuditLogger(sink),
		now:      defaultNow,
	}
}

// RunSync performs one synchronization run. Setup failures (configuration,
// network, protocol) abort the whole run and are returned typed after being
// logged; per-record failures are logged and skipped without aborting.
//
// At most one run per target store may be active at a time; overlapping
// runs are not coordinated and degrade to last-write-wins per record.
func (s *Service) RunSync(ctx context.Context, pageSize int) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("context is required")
	}

	start := s.now()
	session := domain.NewSession(start)

	pageSize = s.effectivePageSize(ctx, pageSize)
	s.audit.Log(ctx, session, "RunSync",
		fmt.Sprintf("Sync run started, page size %d", pageSize), nil)

	apiKey, err := s.resolveAPIKey(ctx)
	if err != nil {
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) {
			s.audit.Log(ctx, session, "RunSync", "ERROR: missing API key", nil)
		} else {
			s.audit.Log(ctx, session, "RunSync",
				fmt.Sprintf("ERROR: reading settings FAILED: %v", err), nil)
		}
		return Summary{}, err
	}

	if enabled, found, _ := s.settingBool(ctx, ports.SettingSyncEnabled); found && !enabled {
		s.audit.Log(ctx, session, "RunSync",
			"WARNING: sync is disabled in settings, continuing caller-triggered run", nil)
	}

	results, err := s.remote.FetchPage(ctx, apiKey, pageSize)
	if err != nil {
		s.audit.Log(ctx, session, "RunSync",
			fmt.Sprintf("ERROR: fetching interventions FAILED: %v", err), nil)
		return Summary{}, err
	}

	if len(results) == 0 {
		s.audit.Log(ctx, session, "RunSync",
			"Sync COMPLETED: remote returned no records", nil)
		return Summary{ElapsedSeconds: time.Since(start).Seconds()}, nil
	}

	summary := Summary{RecordsProcessed: len(results)}
	for _, raw := range results {
		action, id, recErr := s.processRecord(ctx, session, raw)
		if recErr != nil {
			summary.Failed++
			s.audit.Log(ctx, session, "processRecord",
				fmt.Sprintf("ERROR: record FAILED: %v", recErr), id)
			continue
		}

		switch action {
		case actionInserted:
			summary.Inserted++
			s.audit.Log(ctx, session, "processRecord",
				fmt.Sprintf("Inserted intervention %d", *id), id)
		case actionUpdated:
			summary.Updated++
			s.audit.Log(ctx, session, "processRecord",
				fmt.Sprintf("Updated intervention %d", *id), id)
		case actionSkipped:
			summary.Skipped++
			s.audit.Log(ctx, session, "processRecord",
				fmt.Sprintf("Skipped intervention %d, no changes", *id), id)
		}
	}

	summary.ElapsedSeconds = time.Since(start).Seconds()
	// "unprocessable", not "failed": the completion entry must classify as
	// SUCCESS even when some records were skipped over.
	s.audit.Log(ctx, session, "RunSync", fmt.Sprintf(
		"Sync COMPLETED: %d processed, %d inserted, %d updated, %d skipped, %d unprocessable",
		summary.RecordsProcessed, summary.Inserted, summary.Updated, summary.Skipped, summary.Failed), nil)

	return summary, nil
}

type recordAction int

const (
	actionInserted recordAction = iota
	actionUpdated
	actionSkipped
)

// processRecord handles one raw result element: decode, normalize, then an
// atomic lookup-and-write. The returned id is whatever identifying
// information is available, even on failure.
func (s *Service) processRecord(ctx context.Context, session domain.Session, raw []byte) (recordAction, *int64, error) {
	rawRecord, err := domain.DecodeRaw(raw)
	if err != nil {
		return 0, nil, err
	}

	normalized, err := domain.Normalize(rawRecord)
	if err != nil {
		return 0, rawRecord.InterventionID, err
	}

	id := normalized.InterventionID
	now := s.now()

	var action recordAction
	txErr := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		existing, found, err := s.records.Get(txCtx, id)
		if err != nil {
			return errs.Wrap(err, "lookup intervention")
		}

		if !found {
			if err := s.records.Insert(txCtx, newRecord(normalized, now)); err != nil {
				return errs.Wrap(err, "insert intervention")
			}
			action = actionInserted
			return nil
		}

		if !domain.HasChanges(existing, normalized) {
			action = actionSkipped
			return nil
		}

		if err := s.records.Update(txCtx, id, patchFrom(normalized, now)); err != nil {
			return errs.Wrap(err, "update intervention")
		}
		action = actionUpdated
		return nil
	})
	if txErr != nil {
		return 0, &id, txErr
	}

	return action, &id, nil
}

func (s *Service) effectivePageSize(ctx context.Context, pageSize int) int {
	if pageSize == 0 {
		if v, found, err := s.settings.Get(ctx, ports.SettingPageSize); err == nil && found {
			if parsed, perr := strconv.Atoi(strings.TrimSpace(v)); perr == nil {
				pageSize = parsed
			}
		}
	}

	// Clamping policy, not validation: out-of-range sizes fall back to
	// the default instead of rejecting the caller.
	if pageSize <= 0 || pageSize > maxPageSize {
		return defaultPageSize
	}
	return pageSize
}

func (s *Service) resolveAPIKey(ctx context.Context) (string, error) {
	value, found, err := s.settings.Get(ctx, ports.SettingAPIKey)
	if err != nil {
		return "", errs.Wrap(err, "read API key setting")
	}
	if !found || strings.TrimSpace(value) == "" {
		return "", &domain.ConfigError{Setting: ports.SettingAPIKey}
	}
	return value, nil
}

func (s *Service) settingBool(ctx context.Context, key string) (value bool, found bool, err error) {
	v, found, err := s.settings.Get(ctx, key)
	if err != nil || !found {
		return false, found, err
	}
	parsed, perr := strconv.ParseBool(strings.TrimSpace(v))
	if perr != nil {
		return false, false, nil
	}
	return parsed, true, nil
}

func newRecord(n domain.Normalized, now time.Time) ports.Intervention {
	return ports.Intervention{
		InterventionID:           n.InterventionID,
		Title:                    deref(n.Title),
		Description:              deref(n.Description),
		Type:                     deref(n.Type),
		Evaluation:               deref(n.Evaluation),
		DateAnnounced:            n.DateAnnounced,
		ImplementationDate:       n.ImplementationDate,
		RemovalDate:              n.RemovalDate,
		ImplementingJurisdiction: deref(n.ImplementingJurisdiction),
		AffectedJurisdictions:    deref(n.AffectedJurisdictions),
		TargetedProductsHS6:      deref(n.TargetedProductsHS6),
		TargetedSectorsCPC3:      deref(n.TargetedSectorsCPC3),
		Source:                   deref(n.Source),
		LastSyncedAt:             now,
		SyncOrigin:               domain.SyncOrigin,
	}
}

func patchFrom(n domain.Normalized, now time.Time) ports.InterventionPatch {
	return ports.InterventionPatch{
		Title:                    n.Title,
		Description:              n.Description,
		Type:                     n.Type,
		Evaluation:               n.Evaluation,
		DateAnnounced:            n.DateAnnounced,
		ImplementationDate:       n.ImplementationDate,
		RemovalDate:              n.RemovalDate,
		ImplementingJurisdiction: n.ImplementingJurisdiction,
		AffectedJurisdictions:    n.AffectedJurisdictions,
		TargetedProductsHS6:      n.TargetedProductsHS6,
		TargetedSectorsCPC3:      n.TargetedSectorsCPC3,
		Source:                   n.Source,
		LastSyncedAt:             now,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
