// Package config loads and validates board descriptions: grid dimensions,
// the suits in play, the initial piece layout, and per-piece texture paths.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Suit identifies a side. Suits are opaque names declared by the board
// config; the engine only ever compares them for equality.
type Suit string

// PieceKind names a piece class, e.g. "Rook". Kinds are resolved against a
// piece factory when a board is built.
type PieceKind string

// DefaultCellSize is the pixel size used for cells when the config omits one.
const DefaultCellSize = 80

var (
	ErrBadDimensions   = errors.New("config: board dimensions must be positive")
	ErrNoSuits         = errors.New("config: at least one suit is required")
	ErrDuplicateSuit   = errors.New("config: duplicate suit")
	ErrUnknownSuit     = errors.New("config: layout suit not declared")
	ErrMissingKind     = errors.New("config: layout entry has no piece kind")
	ErrOutOfBounds     = errors.New("config: layout square outside the board")
	ErrDuplicateSquare = errors.New("config: layout square used twice")
)

// Placement describes one square of the initial layout.
type Placement struct {
	util.Pos
	Kind PieceKind `json:"kind"`
	Suit Suit      `json:"suit"`
}

// BoardConfig describes a playable board. Zero cell sizes are normalized to
// DefaultCellSize during Parse; everything else must validate.
type BoardConfig struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	CellWidth  int         `json:"cell_width"`
	CellHeight int         `json:"cell_height"`
	Suits      []Suit      `json:"suits"`
	Layout     []Placement `json:"layout"`

	// Textures maps kind then suit to an opaque asset path. The engine
	// never interprets the path; frontends hand it to the resource manager.
	Textures map[PieceKind]map[Suit]string `json:"textures"`
}

//go:embed board.json
var defaultBoard []byte

// Default returns the built-in classic chess board.
func Default() (*BoardConfig, error) {
	return Parse(defaultBoard)
}

// Load reads and parses a board config from disk.
func Load(path string) (*BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a board config and validates it.
func Parse(data []byte) (*BoardConfig, error) {
	var c BoardConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellSize
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellSize
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the config's internal consistency.
func (c *BoardConfig) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, c.Width, c.Height)
	}
	if len(c.Suits) == 0 {
		return ErrNoSuits
	}
	suits := make(map[Suit]bool, len(c.Suits))
	for _, s := range c.Suits {
		if suits[s] {
			return fmt.Errorf("%w: %q", ErrDuplicateSuit, s)
		}
		suits[s] = true
	}
	seen := make(map[util.Pos]bool, len(c.Layout))
	for i, pl := range c.Layout {
		if pl.Kind == "" {
			return fmt.Errorf("%w: layout[%d]", ErrMissingKind, i)
		}
		if !suits[pl.Suit] {
			return fmt.Errorf("%w: layout[%d] suit %q", ErrUnknownSuit, i, pl.Suit)
		}
		if !pl.Within(c.Width, c.Height) {
			return fmt.Errorf("%w: layout[%d] %v", ErrOutOfBounds, i, pl.Pos)
		}
		if seen[pl.Pos] {
			return fmt.Errorf("%w: layout[%d] %v", ErrDuplicateSquare, i, pl.Pos)
		}
		seen[pl.Pos] = true
	}
	return nil
}

// HasSuit reports whether the config declares the given suit.
func (c *BoardConfig) HasSuit(s Suit) bool {
	for _, have := range c.Suits {
		if have == s {
			return true
		}
	}
	return false
}

// Texture returns the asset path configured for a kind and suit, or "" when
// none is configured.
func (c *BoardConfig) Texture(kind PieceKind, suit Suit) string {
	if bySuit, ok := c.Textures[kind]; ok {
		return bySuit[suit]
	}
	return ""
}
