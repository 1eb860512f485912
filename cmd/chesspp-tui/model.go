package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/piece"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// model drives one match in the terminal. The cursor walks the grid,
// enter selects a piece of the moving suit and then plays it onto the
// cursor square, tab cycles through the selected piece's capture
// entries, and esc drops the selection.
type model struct {
	conf *config.BoardConfig
	b    *board.Board

	cursor     util.Pos
	selectedID board.PieceID
	hasSel     bool
	moves      []util.Pos      // empty squares the selection can move to
	caps       []board.Capture // entries the selection can execute
	capIdx     int             // cycled by tab

	lastFrom, lastTo util.Pos
	hasLast          bool

	turn     int
	gameOver bool
	winner   config.Suit
	status   string

	width, height int
}

func newModel(conf *config.BoardConfig) (model, error) {
	b, err := board.New(conf, piece.NewFactory(conf))
	if err != nil {
		return model{}, err
	}
	return model{
		conf:   conf,
		b:      b,
		status: "enter selects a piece",
	}, nil
}

func (m model) currentSuit() config.Suit {
	return m.conf.Suits[m.turn]
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.reset()
			return m, nil
		case "esc":
			m.deselect()
			m.status = "selection cleared"
			return m, nil
		case "up", "k":
			m.moveCursor(0, -1)
			return m, nil
		case "down", "j":
			m.moveCursor(0, 1)
			return m, nil
		case "left", "h":
			m.moveCursor(-1, 0)
			return m, nil
		case "right", "l":
			m.moveCursor(1, 0)
			return m, nil
		case "tab":
			m.cycleCapture()
			return m, nil
		case "enter", " ":
			m.confirm()
			return m, nil
		}
	}
	return m, nil
}

func (m *model) moveCursor(dx, dy int) {
	next := m.cursor.Offset(dx, dy)
	if next.Within(m.conf.Width, m.conf.Height) {
		m.cursor = next
	}
}

// cycleCapture advances through the selection's capture entries and
// parks the cursor on the next entry's landing square.
func (m *model) cycleCapture() {
	if !m.hasSel || len(m.caps) == 0 {
		return
	}
	m.capIdx = (m.capIdx + 1) % len(m.caps)
	entry := m.caps[m.capIdx]
	m.cursor = entry.Landing
	m.status = m.describeCapture(entry)
}

func (m model) describeCapture(entry board.Capture) string {
	victim := m.b.ByID(entry.Victim)
	if victim == nil {
		return "capture"
	}
	if victim.Pos() == entry.Landing {
		return fmt.Sprintf("capture %s", victim)
	}
	return fmt.Sprintf("capture %s, landing on %s", victim, entry.Landing)
}

// confirm selects the piece under the cursor, or plays the current
// selection onto the cursor square.
func (m *model) confirm() {
	if m.gameOver {
		return
	}

	if p := m.b.At(m.cursor); p != nil && p.Suit() == m.currentSuit() {
		m.selectPiece(p)
		return
	}

	if !m.hasSel {
		m.status = fmt.Sprintf("no %s piece there", m.currentSuit())
		return
	}
	sel := m.b.ByID(m.selectedID)
	if sel == nil {
		m.deselect()
		return
	}

	if entry, ok := m.captureUnderCursor(); ok {
		m.playCapture(sel, entry)
		return
	}
	for _, t := range m.moves {
		if t == m.cursor {
			m.playMove(sel, t)
			return
		}
	}
	m.status = fmt.Sprintf("%s cannot play to %s", sel, m.cursor)
}

// selectPiece records the piece and derives what it can do right now.
func (m *model) selectPiece(p *board.Piece) {
	m.selectedID = p.ID()
	m.hasSel = true
	m.capIdx = 0

	m.moves = m.moves[:0]
	for _, t := range p.Trajectory() {
		if m.b.At(t) == nil {
			m.moves = append(m.moves, t)
		}
	}

	m.caps = m.caps[:0]
	for _, entry := range m.b.Captures() {
		victim := m.b.ByID(entry.Victim)
		if victim == nil || victim.ID() == p.ID() || victim.Suit() == p.Suit() {
			continue
		}
		if p.CanCaptureAt(entry.Landing) {
			m.caps = append(m.caps, entry)
		}
	}

	m.status = fmt.Sprintf("%s: %d moves, %d captures", p, len(m.moves), len(m.caps))
}

// captureUnderCursor picks the capture entry to execute at the cursor:
// the cycled entry when it matches, otherwise one whose victim stands
// on the cursor square, otherwise any entry landing there.
func (m *model) captureUnderCursor() (board.Capture, bool) {
	if len(m.caps) > 0 {
		current := m.caps[m.capIdx%len(m.caps)]
		if current.Landing == m.cursor {
			return current, true
		}
	}
	var fallback board.Capture
	var have bool
	for _, entry := range m.caps {
		if entry.Landing != m.cursor {
			continue
		}
		victim := m.b.ByID(entry.Victim)
		if victim != nil && victim.Pos() == m.cursor {
			return entry, true
		}
		if !have {
			fallback, have = entry, true
		}
	}
	return fallback, have
}

func (m *model) playMove(sel *board.Piece, target util.Pos) {
	from := sel.Pos()
	if !m.b.Move(from, target) {
		m.status = fmt.Sprintf("move to %s refused", target)
		return
	}
	m.settle(from, target, "")
}

func (m *model) playCapture(sel *board.Piece, entry board.Capture) {
	from := sel.Pos()
	victim := m.b.ByID(entry.Victim)
	wonBy := config.Suit("")
	if victim != nil && victim.Kind() == piece.KindKing {
		wonBy = sel.Suit()
	}
	desc := m.describeCapture(entry)
	if !m.b.Capture(from, entry) {
		m.status = "capture refused"
		return
	}
	m.settle(from, entry.Landing, wonBy)
	if !m.gameOver {
		m.status = desc
	}
}

// settle runs the shared aftermath: promotion, victory, turn change.
func (m *model) settle(from, to util.Pos, wonBy config.Suit) {
	m.lastFrom, m.lastTo = from, to
	m.hasLast = true

	promoted := false
	if p := m.b.At(to); p != nil {
		if pawn, ok := p.Rule().(*piece.Pawn); ok && pawn.Promotes(p) {
			promoted = m.b.Replace(to, piece.KindQueen) == nil
		}
	}

	switch {
	case wonBy != "":
		m.gameOver = true
		m.winner = wonBy
		m.status = fmt.Sprintf("%s wins! press n for a new match", wonBy)
	case promoted:
		m.turn = (m.turn + 1) % len(m.conf.Suits)
		m.status = fmt.Sprintf("promoted on %s, %s to move", to, m.currentSuit())
	default:
		m.turn = (m.turn + 1) % len(m.conf.Suits)
		m.status = fmt.Sprintf("%s to move", m.currentSuit())
	}
	m.deselect()
}

func (m *model) deselect() {
	m.hasSel = false
	m.selectedID = 0
	m.moves = nil
	m.caps = nil
	m.capIdx = 0
}

func (m *model) reset() {
	b, err := board.New(m.conf, piece.NewFactory(m.conf))
	if err != nil {
		m.status = fmt.Sprintf("reset failed: %v", err)
		return
	}
	m.b = b
	m.turn = 0
	m.gameOver = false
	m.winner = ""
	m.hasLast = false
	m.deselect()
	m.status = fmt.Sprintf("new match, %s to move", m.currentSuit())
}
