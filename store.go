package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

/* ─── Key-value persistence ──────────────────────────────────────────── */

// Fixed keys for the persisted collections. The values are the same JSON
// shapes the original web client kept in browser storage; don't rename.
const (
	keyFoodLogs     = "snapcalorie_logs"
	keyExerciseLogs = "snapcalorie_exercise_logs"
	keyCustomSports = "snapcalorie_sports"
	keyProfile      = "snapcalorie_profile"
	keyTheme        = "snapcalorie_theme"
	keyAuth         = "snapcalorie_auth"
)

// kvStore is the durable string-keyed store contract: get/set, nothing more.
type kvStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// pgKV backs kvStore with a single Postgres table.
type pgKV struct {
	pool *pgxpool.Pool
}

func (s *pgKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, "SELECT value FROM kv_store WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *pgKV) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	return err
}

/* ─── Store ──────────────────────────────────────────────────────────── */

// authConfig is the persisted passcode hash and session token.
type authConfig struct {
	PasscodeHash string `json:"passcode_hash"`
	Token        string `json:"token"`
}

// Store owns the in-memory application state and its persistence
// round-trips. In-memory state is authoritative for the session: every
// mutation writes through to the kvStore, but a failed write only logs a
// warning and never corrupts or rolls back memory.
//
// The mutex serializes HTTP handlers; the computation functions themselves
// stay pure and operate on snapshots.
type Store struct {
	mu           sync.Mutex
	kv           kvStore
	profile      userProfile
	foodLogs     []foodLogItem
	exerciseLogs []exerciseLogItem
	customSports map[string]float64
	theme        string
	auth         authConfig
}

func newStore(kv kvStore) *Store {
	return &Store{
		kv:           kv,
		profile:      userProfile{GoalType: goalMaintain},
		customSports: map[string]float64{},
	}
}

// Load reads every persisted key. Each key is decoded independently;
// a corrupt value degrades that key to its default without blocking the
// others, and a missing key is simply "no data".
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loadKey(ctx, s.kv, keyFoodLogs, &s.foodLogs)
	loadKey(ctx, s.kv, keyExerciseLogs, &s.exerciseLogs)
	loadKey(ctx, s.kv, keyCustomSports, &s.customSports)
	loadKey(ctx, s.kv, keyProfile, &s.profile)
	loadKey(ctx, s.kv, keyAuth, &s.auth)
	if v, ok, err := s.kv.Get(ctx, keyTheme); err == nil && ok {
		s.theme = v
	} else if err != nil {
		log.Printf("[Store.Load] read %s: %v", keyTheme, err)
	}
	if !validGoalTypes[s.profile.GoalType] {
		s.profile.GoalType = goalMaintain
	}
	if s.customSports == nil {
		s.customSports = map[string]float64{}
	}
}

// loadKey decodes one key into dst, resetting dst to its zero value on
// corrupt JSON so a partial decode can't leave mixed state behind.
func loadKey[T any](ctx context.Context, kv kvStore, key string, dst *T) {
	value, ok, err := kv.Get(ctx, key)
	if err != nil {
		log.Printf("[Store.Load] read %s: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		var zero T
		*dst = zero
		log.Printf("[Store.Load] corrupt %s, falling back to defaults: %v", key, err)
	}
}

// persist is fire-and-forget: a failed write is logged and forgotten, the
// next successful write recovers durability.
func (s *Store) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[Store.persist] marshal %s: %v", key, err)
		return
	}
	if err := s.kv.Set(context.Background(), key, string(data)); err != nil {
		log.Printf("[Store.persist] write %s failed, in-memory state kept: %v", key, err)
	}
}

/* ─── Food logs ──────────────────────────────────────────────────────── */

// AddFoodLog prepends; display order is newest-first, fixed at insertion
// so it stays stable under timestamp ties.
func (s *Store) AddFoodLog(item foodLogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foodLogs = append([]foodLogItem{item}, s.foodLogs...)
	s.persist(keyFoodLogs, s.foodLogs)
}

// UpdateFoodLog applies mutate to the item with the given id. Returns false
// when no such item exists.
func (s *Store) UpdateFoodLog(id string, mutate func(*foodLogItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.foodLogs {
		if s.foodLogs[i].ID == id {
			mutate(&s.foodLogs[i])
			s.persist(keyFoodLogs, s.foodLogs)
			return true
		}
	}
	return false
}

func (s *Store) DeleteFoodLog(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.foodLogs {
		if s.foodLogs[i].ID == id {
			s.foodLogs = append(s.foodLogs[:i], s.foodLogs[i+1:]...)
			s.persist(keyFoodLogs, s.foodLogs)
			return true
		}
	}
	return false
}

// FoodLogs returns a copy of the log slice, newest first.
func (s *Store) FoodLogs() []foodLogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]foodLogItem, len(s.foodLogs))
	copy(out, s.foodLogs)
	return out
}

/* ─── Exercise logs ──────────────────────────────────────────────────── */

func (s *Store) AddExerciseLog(item exerciseLogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exerciseLogs = append([]exerciseLogItem{item}, s.exerciseLogs...)
	s.persist(keyExerciseLogs, s.exerciseLogs)
}

func (s *Store) UpdateExerciseLog(id string, mutate func(*exerciseLogItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exerciseLogs {
		if s.exerciseLogs[i].ID == id {
			mutate(&s.exerciseLogs[i])
			s.persist(keyExerciseLogs, s.exerciseLogs)
			return true
		}
	}
	return false
}

func (s *Store) DeleteExerciseLog(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exerciseLogs {
		if s.exerciseLogs[i].ID == id {
			s.exerciseLogs = append(s.exerciseLogs[:i], s.exerciseLogs[i+1:]...)
			s.persist(keyExerciseLogs, s.exerciseLogs)
			return true
		}
	}
	return false
}

func (s *Store) ExerciseLogs() []exerciseLogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]exerciseLogItem, len(s.exerciseLogs))
	copy(out, s.exerciseLogs)
	return out
}

/* ─── Profile, sports, theme, auth ───────────────────────────────────── */

func (s *Store) Profile() userProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProfile(s.profile)
}

func (s *Store) SetProfile(p userProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = copyProfile(p)
	s.persist(keyProfile, s.profile)
}

func copyProfile(p userProfile) userProfile {
	out := p
	if p.WeightLbs != nil {
		w := *p.WeightLbs
		out.WeightLbs = &w
	}
	out.FrequentSports = append([]string(nil), p.FrequentSports...)
	return out
}

func (s *Store) CustomSports() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(s.customSports))
	for k, v := range s.customSports {
		out[k] = v
	}
	return out
}

func (s *Store) SetCustomSport(name string, met float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customSports[name] = met
	s.persist(keyCustomSports, s.customSports)
}

// DeleteCustomSport removes the sport and, when present, drops its name
// from the profile's frequent sports; dangling references would break
// later MET lookups silently.
func (s *Store) DeleteCustomSport(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customSports[name]; !ok {
		return false
	}
	delete(s.customSports, name)
	s.persist(keyCustomSports, s.customSports)

	kept := s.profile.FrequentSports[:0]
	removed := false
	for _, sport := range s.profile.FrequentSports {
		if sport == name {
			removed = true
			continue
		}
		kept = append(kept, sport)
	}
	if removed {
		s.profile.FrequentSports = kept
		s.persist(keyProfile, s.profile)
	}
	return true
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	if err := s.kv.Set(context.Background(), keyTheme, theme); err != nil {
		log.Printf("[Store.SetTheme] write failed, in-memory state kept: %v", err)
	}
}

func (s *Store) Auth() authConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

func (s *Store) SetAuth(a authConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = a
	s.persist(keyAuth, s.auth)
}
