package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/hitscan/event"
)

const createBatchSize = 500

var ErrClosed = errors.New("journal closed")

// Store persists shot records to SQLite
// Emit only buffers; rows reach the database on Flush
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger

	mu      sync.Mutex
	byShot  map[uuid.UUID]*ShotRecord
	pending []*ShotRecord
	closed  bool
}

// Open connects to the SQLite file at path and migrates the schema
// Empty path opens a private in-memory database
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if path == "" {
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        createBatchSize,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %q: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	if path == "" {
		log.Info().Msg("Using in-memory shot journal")
	} else {
		log.Info().Str("path", path).Msg("Using shot journal")
	}

	return &Store{
		db:     db,
		logger: log,
		byShot: make(map[uuid.UUID]*ShotRecord),
	}, nil
}

// Emit implements event.Sink
func (s *Store) Emit(ev event.GameEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	switch p := ev.Payload.(type) {
	case *event.FireRejectedPayload:
		s.pending = append(s.pending, &ShotRecord{
			ShotID:   uuid.NewString(),
			Weapon:   ev.Weapon,
			Time:     ev.Time,
			Outcome:  OutcomeRejected,
			Reason:   p.Reason.String(),
			AmmoLeft: p.Ammo,
		})

	case *event.WeaponFiredPayload:
		r := s.shot(p.ShotID, ev)
		r.discharged = true
		r.AmmoLeft = p.AmmoLeft
		r.ConeRadius = p.ConeRadius
		r.OffsetX = p.OffsetX
		r.OffsetZ = p.OffsetZ
		r.setOrigin(p.Origin)
		r.setDirection(p.Direction)

	case *event.ShotHitPayload:
		r := s.shot(p.ShotID, ev)
		r.Outcome = OutcomeHit
		r.Target = uint64(p.Actor)
		r.Distance = p.Distance
		r.Damage = p.Damage
		r.setImpact(p.Location)
		r.setDirection(p.Direction)

	case *event.ShotMissedPayload:
		r := s.shot(p.ShotID, ev)
		r.Outcome = OutcomeMiss
		r.setImpact(p.End)
		r.setDirection(p.Direction)

	case *event.DamageUnattributedPayload:
		s.shot(p.ShotID, ev).Unattributed = true

	case *event.AimFallbackPayload:
		s.shot(p.ShotID, ev).AimFallback = true
	}
}

// shot returns the buffered record for id, creating it on first event
func (s *Store) shot(id uuid.UUID, ev event.GameEvent) *ShotRecord {
	if r, ok := s.byShot[id]; ok {
		return r
	}
	r := &ShotRecord{
		ShotID: id.String(),
		Weapon: ev.Weapon,
		Time:   ev.Time,
	}
	s.byShot[id] = r
	s.pending = append(s.pending, r)
	return r
}

// Pending returns the number of buffered records
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush writes complete records in one batch
// Shots still waiting for their discharge event stay buffered for the next flush
func (s *Store) Flush() error {
	return s.flush(false)
}

func (s *Store) flush(all bool) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	var batch, held []*ShotRecord
	for _, r := range s.pending {
		if all || r.ready() {
			batch = append(batch, r)
			continue
		}
		held = append(held, r)
	}
	s.pending = held
	for id, r := range s.byShot {
		if all || r.ready() {
			delete(s.byShot, id)
		}
	}
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := s.db.CreateInBatches(batch, createBatchSize).Error; err != nil {
		return fmt.Errorf("failed to write %d shot records: %w", len(batch), err)
	}
	s.logger.Debug().Int("records", len(batch)).Msg("Journal flushed")
	return nil
}

// Shots returns stored records for weapon in firing order; empty weapon returns all
func (s *Store) Shots(weapon string) ([]ShotRecord, error) {
	var out []ShotRecord
	q := s.db.Order("time asc, id asc")
	if weapon != "" {
		q = q.Where("weapon = ?", weapon)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to query shots: %w", err)
	}
	return out, nil
}

// Summary aggregates stored records for weapon
func (s *Store) Summary(weapon string) (Summary, error) {
	sum := Summary{Weapon: weapon, Rejections: make(map[string]int64)}

	var rows []struct {
		Outcome string
		Reason  string
		Count   int64
		Damage  float64
		Unattr  int64
	}
	err := s.db.Model(&ShotRecord{}).
		Select("outcome, reason, COUNT(*) AS count, COALESCE(SUM(damage), 0) AS damage, COALESCE(SUM(CASE WHEN unattributed THEN 1 ELSE 0 END), 0) AS unattr").
		Where("weapon = ?", weapon).
		Group("outcome, reason").
		Scan(&rows).Error
	if err != nil {
		return sum, fmt.Errorf("failed to summarize %q: %w", weapon, err)
	}

	for _, r := range rows {
		switch r.Outcome {
		case OutcomeHit:
			sum.Hits += r.Count
			sum.Fired += r.Count
		case OutcomeMiss:
			sum.Misses += r.Count
			sum.Fired += r.Count
		case OutcomeRejected:
			sum.Rejected += r.Count
			sum.Rejections[r.Reason] += r.Count
		}
		sum.TotalDamage += r.Damage
		sum.Unattributed += r.Unattr
	}
	return sum, nil
}

// Close writes every buffered record, complete or not, and releases the connection
func (s *Store) Close() error {
	flushErr := s.flush(true)
	if errors.Is(flushErr, ErrClosed) {
		return nil
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Join(flushErr, fmt.Errorf("failed to access sql interface: %w", err))
	}
	return errors.Join(flushErr, sqlDB.Close())
}
