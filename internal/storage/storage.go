package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// Preferences stores user settings.
type Preferences struct {
	PlayerName   string    `json:"player_name"`
	SoundEnabled bool      `json:"sound_enabled"`
	ShowThreats  bool      `json:"show_threats"`
	BoardConfig  string    `json:"board_config"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns the settings used before the user changes
// anything: sound and threat highlights on, the embedded board layout.
func DefaultPreferences() *Preferences {
	return &Preferences{
		PlayerName:   "Player",
		SoundEnabled: true,
		ShowThreats:  true,
		BoardConfig:  "",
		LastPlayed:   time.Now(),
	}
}

// MatchStats stores statistics across completed matches.
type MatchStats struct {
	GamesPlayed   int            `json:"games_played"`
	WinsBySuit    map[string]int `json:"wins_by_suit"`
	Abandoned     int            `json:"abandoned"`
	TotalMoves    int            `json:"total_moves"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestGame   int            `json:"longest_game_moves"`
}

// NewMatchStats returns empty match statistics.
func NewMatchStats() *MatchStats {
	return &MatchStats{
		WinsBySuit: make(map[string]int),
	}
}

// WinRate returns the share of recorded matches won by the given suit,
// as a percentage (0-100).
func (s *MatchStats) WinRate(suit string) float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.WinsBySuit[suit]) / float64(s.GamesPlayed) * 100
}

// MatchResult describes a finished match. Winner is the victorious suit
// name, or empty if the match was abandoned.
type MatchResult struct {
	Winner   string
	Moves    int
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database at the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the database rooted at dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if none
// were ever saved.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves match statistics.
func (s *Storage) SaveStats(stats *MatchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads match statistics, returning empty stats if none were
// ever saved.
func (s *Storage) LoadStats() (*MatchStats, error) {
	stats := NewMatchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordMatch records a completed match and updates statistics.
func (s *Storage) RecordMatch(result MatchResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalMoves += result.Moves
	stats.TotalPlayTime += result.Duration
	if result.Moves > stats.LongestGame {
		stats.LongestGame = result.Moves
	}

	if result.Winner == "" {
		stats.Abandoned++
	} else {
		if stats.WinsBySuit == nil {
			stats.WinsBySuit = make(map[string]int)
		}
		stats.WinsBySuit[result.Winner]++
	}

	return s.SaveStats(stats)
}
