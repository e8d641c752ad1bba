package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
)

// ANSI color codes for Board rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

const emptySymbol = "·"

// indexed by PlayerID; White is 1 and Black is 2
var playerColors = []string{ColorGray, ColorYellow, ColorCyan, ColorRed, ColorGreen, ColorBlue, ColorPurple}

func getPlayerColor(owner core.PlayerID) string {
	if owner < 0 {
		return ColorGray
	}
	return playerColors[int(owner)%len(playerColors)]
}

// Board returns a colored text rendering of the grid, highest rank first.
// White units are upper case, every other side lower case.
func (a *Arena) Board() string {
	return a.render(true)
}

// PlainBoard is Board without ANSI color codes
func (a *Arena) PlainBoard() string {
	return a.render(false)
}

func (a *Arena) render(color bool) string {
	var sb strings.Builder
	// ~12 bytes per cell with color codes, plus labels
	sb.Grow((a.width*12 + 8) * (a.height + 2))

	for y := a.height - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < a.width; x++ {
			a.writeCell(&sb, core.Square{X: x, Y: y}, color)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("   ")
	for x := 0; x < a.width; x++ {
		fmt.Fprintf(&sb, "%-2d", x)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (a *Arena) writeCell(sb *strings.Builder, sq core.Square, color bool) {
	id := a.grid[sq.ToIndex(a.width)]
	if id == core.NoUnit {
		if color {
			sb.WriteString(ColorGray)
		}
		sb.WriteString(emptySymbol)
	} else {
		u := a.unit(id)
		if color {
			sb.WriteString(getPlayerColor(u.Owner))
		}
		sb.WriteByte(u.Symbol(White))
	}
	if color {
		sb.WriteString(ColorReset)
	}
	sb.WriteString(" ")
}
