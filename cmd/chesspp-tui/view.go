package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/piece"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	turnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	winStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("24"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("58"))
	moveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	captureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	lastMoveBg    = lipgloss.Color("236")

	// One foreground per suit, in config declaration order.
	suitStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}
)

// View renders the board in a fixed-width grid with the status and
// help lines underneath. Cells are three characters wide; styling
// never changes cell width, so columns stay aligned.
func (m model) View() string {
	var b strings.Builder

	header := titleStyle.Render("ChessPlusPlus")
	if m.gameOver {
		header += "   " + winStyle.Render(fmt.Sprintf("%s wins!", m.winner))
	} else {
		header += "   " + turnStyle.Render(fmt.Sprintf("%s to move", m.currentSuit()))
	}
	b.WriteString(header + "\n\n")

	b.WriteString(labelStyle.Render(m.columnLabels()) + "\n")
	for y := 0; y < m.conf.Height; y++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%2d ", y)))
		for x := 0; x < m.conf.Width; x++ {
			b.WriteString(m.renderCell(util.Pos{X: x, Y: y}))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	b.WriteString(helpStyle.Render("arrows move · enter select/play · tab cycle captures · esc cancel · n new · q quit") + "\n")
	return b.String()
}

// columnLabels writes the file letters above the grid.
func (m model) columnLabels() string {
	var b strings.Builder
	b.WriteString("   ")
	for x := 0; x < m.conf.Width; x++ {
		b.WriteString(fmt.Sprintf(" %c ", columnLabel(x)))
	}
	return b.String()
}

func columnLabel(x int) byte {
	if x < 26 {
		return byte('a' + x)
	}
	return byte('0' + x%10)
}

// renderCell returns one fixed-width cell with its highlight applied.
func (m model) renderCell(pos util.Pos) string {
	glyph := "."
	style := labelStyle

	if p := m.b.At(pos); p != nil {
		glyph = string(pieceGlyph(p))
		style = suitStyle(m.conf, p.Suit())
		if m.hasSel && m.isCaptureLanding(pos) {
			style = style.Underline(true)
		}
	} else if m.hasSel {
		if m.isCaptureLanding(pos) {
			glyph, style = "x", captureStyle
		} else if m.isMoveTarget(pos) {
			glyph, style = "*", moveStyle
		}
	}

	cell := " " + glyph + " "
	if pos == m.cursor {
		cell = "[" + glyph + "]"
		return cursorStyle.Render(cell)
	}
	if m.hasSel {
		if sel := m.b.ByID(m.selectedID); sel != nil && sel.Pos() == pos {
			return selectedStyle.Render(cell)
		}
	}
	if m.hasLast && (pos == m.lastFrom || pos == m.lastTo) {
		return style.Background(lastMoveBg).Render(cell)
	}
	return style.Render(cell)
}

func (m model) isMoveTarget(pos util.Pos) bool {
	for _, t := range m.moves {
		if t == pos {
			return true
		}
	}
	return false
}

func (m model) isCaptureLanding(pos util.Pos) bool {
	for _, entry := range m.caps {
		if entry.Landing == pos {
			return true
		}
	}
	return false
}

// pieceGlyph is the letter shown for a piece: the chess letter for the
// stock kinds, the kind's initial for anything else. The first
// configured suit is uppercase, the second lowercase.
func pieceGlyph(p *board.Piece) byte {
	letter := kindLetter(p.Kind())
	conf := p.Board().Config()
	if len(conf.Suits) > 1 && p.Suit() == conf.Suits[1] {
		return letter | 0x20 // lowercase
	}
	return letter
}

func kindLetter(kind config.PieceKind) byte {
	if kind == piece.KindKnight {
		return 'N'
	}
	if kind == "" {
		return '?'
	}
	return kind[0] &^ 0x20 // uppercase
}

func suitStyle(conf *config.BoardConfig, suit config.Suit) lipgloss.Style {
	for i, s := range conf.Suits {
		if s == suit {
			return suitStyles[i%len(suitStyles)]
		}
	}
	return suitStyles[0]
}
