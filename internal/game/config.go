package game

import "time"

// Config holds every tunable simulation parameter. It is built once at
// startup and passed by value into the world; nothing mutates it afterwards.
type Config struct {
	Title string

	WindowW int
	WindowH int

	// Movement speeds in pixels per frame.
	PlayerSpeed float64
	EnemySpeed  float64
	BulletSpeed float64
	// EnemySpeedJitter is the upper bound of the random per-enemy speed
	// bonus added on top of EnemySpeed.
	EnemySpeedJitter float64

	PlayerHealth int
	EnemyHealth  int
	BulletDamage int

	BulletRadius float64
	// EnemyHitRadius is added to the bullet radius for bullet-enemy contact.
	EnemyHitRadius float64
	// PlayerContactRadius is the enemy-player touching distance; inside it
	// the player takes 1 damage every frame.
	PlayerContactRadius float64

	// FireCooldown is the minimum wall-clock interval between shots.
	FireCooldown float64
	// SpawnInterval is the wall-clock interval between enemy spawns.
	SpawnInterval  float64
	MaxEnemies     int
	InitialEnemies int

	// ZoneShrinkRate is radius loss per frame while the zone is shrinking.
	ZoneShrinkRate float64
	ZoneMinRadius  float64

	KillScore int

	ScoreFile     string
	GameOverDelay time.Duration
}

// DefaultConfig returns the stock game tuning.
func DefaultConfig() Config {
	return Config{
		Title:               "The Last Helldiver",
		WindowW:             1200,
		WindowH:             700,
		PlayerSpeed:         3.0,
		EnemySpeed:          1.0,
		BulletSpeed:         7.0,
		EnemySpeedJitter:    1.9,
		PlayerHealth:        100,
		EnemyHealth:         50,
		BulletDamage:        25,
		BulletRadius:        5.0,
		EnemyHitRadius:      12.0,
		PlayerContactRadius: 20.0,
		FireCooldown:        0.3,
		SpawnInterval:       3.0,
		MaxEnemies:          10,
		InitialEnemies:      5,
		ZoneShrinkRate:      0.1,
		ZoneMinRadius:       50.0,
		KillScore:           10,
		ScoreFile:           "game_score.txt",
		GameOverDelay:       3 * time.Second,
	}
}

// Center returns the window midpoint, where the player and the safe zone
// are anchored.
func (c Config) Center() Vec {
	return Vec{X: float64(c.WindowW) / 2, Y: float64(c.WindowH) / 2}
}

// ZoneStartRadius is the initial safe zone radius: half the smaller
// window dimension.
func (c Config) ZoneStartRadius() float64 {
	w, h := float64(c.WindowW), float64(c.WindowH)
	if w < h {
		return w * 0.5
	}
	return h * 0.5
}
