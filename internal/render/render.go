// Package render draws a minesweeper board for the console and for tile
// displays. Renderers only read the board; they never move the game along.
package render

import "github.com/vancomm/minesweeper/internal/mines"

// Board is the read side of a game. *mines.GameState implements it.
type Board interface {
	Size() (width, height int)
	Visibility(x, y int) mines.Visibility
	Value(x, y int) mines.Cell
	Status() mines.Status
	Exploded() (mines.Point, bool)
}
