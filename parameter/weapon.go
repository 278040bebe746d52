package parameter

// Weapon defaults
const (
	// WeaponDefaultName is the name reported for an unnamed weapon
	WeaponDefaultName = "DefaultWeapon"

	// WeaponDefaultAmmo is the starting magazine
	WeaponDefaultAmmo = 10000

	// WeaponDefaultDamage is damage per hit
	WeaponDefaultDamage = 10.0

	// WeaponDefaultFireRate is shots per second
	WeaponDefaultFireRate = 10.0

	// WeaponDefaultMaxRange is the ray length in world units
	WeaponDefaultMaxRange = 10000.0

	// WeaponDefaultRecoil is reported but unused by the firing pipeline
	WeaponDefaultRecoil = 0.0
)

// Rate limiting
const (
	// WeaponShotIntervalFactor divides fire rate into the minimum gap between accepted shots
	// Gap = factor / fireRate, so a rate of 10 yields 0.2s
	WeaponShotIntervalFactor = 2.0
)

// Aim cone
const (
	// ConeDefaultBaseRadius is the cone base radius when aiming starts
	ConeDefaultBaseRadius = 310.0

	// ConeDefaultMinBaseRadius is the floor the radius converges to
	ConeDefaultMinBaseRadius = 200.0

	// ConeDefaultHeight is the distance from muzzle to cone base
	ConeDefaultHeight = 1000.0

	// ConeDefaultShrinkSpeed is the exponential convergence rate (1/s)
	ConeDefaultShrinkSpeed = 5.0

	// ConeIndicatorRadiusUnit is the mesh radius at unit scale
	ConeIndicatorRadiusUnit = 200.0

	// ConeIndicatorHeightUnit is the mesh height at unit scale
	ConeIndicatorHeightUnit = 100.0
)

// Mesh sockets
const (
	// MuzzleSocket is the socket the muzzle flash attaches to and rays start from
	MuzzleSocket = "MuzzleFlashSocket"
)

// Debug visualization
const (
	// DebugShotDuration is how long shot lines stay visible (seconds)
	DebugShotDuration = 1.0

	// DebugHitPointSize is the hit marker size
	DebugHitPointSize = 10.0
)
