package journal

import (
	"time"

	"github.com/lixenwraith/hitscan/vmath"
)

// Shot outcomes stored in ShotRecord.Outcome
const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeRejected = "rejected"
)

// Models is the list of tables migrated on Open
var Models = []interface{}{
	&ShotRecord{},
}

// ShotRecord is one trigger pull: a resolved shot or a rejection
type ShotRecord struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	ShotID    string    `gorm:"size:36;index"`
	Weapon    string    `gorm:"size:64;index"`
	Time      float64   // Simulation seconds
	Outcome   string    `gorm:"size:16;index"`
	Reason    string    `gorm:"size:16"` // Rejections only

	AmmoLeft   int
	ConeRadius float64
	OffsetX    float64
	OffsetZ    float64

	OriginX float64
	OriginY float64
	OriginZ float64
	DirX    float64
	DirY    float64
	DirZ    float64

	// Impact point on hit, ray end on miss
	ImpactX float64
	ImpactY float64
	ImpactZ float64

	Target       uint64
	Distance     float64
	Damage       float64
	Unattributed bool
	AimFallback  bool

	// Set once the discharge event arrives; outcome events precede it
	discharged bool
}

// ready reports whether every event of the pull has been merged
func (r *ShotRecord) ready() bool {
	return r.Outcome == OutcomeRejected || r.discharged
}

func (r *ShotRecord) setOrigin(v vmath.Vec3F) {
	r.OriginX, r.OriginY, r.OriginZ = v.X, v.Y, v.Z
}

func (r *ShotRecord) setDirection(v vmath.Vec3F) {
	r.DirX, r.DirY, r.DirZ = v.X, v.Y, v.Z
}

func (r *ShotRecord) setImpact(v vmath.Vec3F) {
	r.ImpactX, r.ImpactY, r.ImpactZ = v.X, v.Y, v.Z
}

// Impact returns the stored impact or ray end point
func (r *ShotRecord) Impact() vmath.Vec3F {
	return vmath.Vec3F{X: r.ImpactX, Y: r.ImpactY, Z: r.ImpactZ}
}

// Summary aggregates one weapon's journal
type Summary struct {
	Weapon       string
	Fired        int64
	Hits         int64
	Misses       int64
	Rejected     int64
	Unattributed int64
	TotalDamage  float64
	Rejections   map[string]int64
}

// Accuracy returns hits per fired shot, zero when nothing fired
func (s Summary) Accuracy() float64 {
	if s.Fired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Fired)
}
