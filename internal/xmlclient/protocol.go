//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package xmlclient speaks the match server's wire protocol: a stream of
// sibling XML elements over a TCP connection, with no enclosing root
// element, one frame per game event. There is no third-party XML
// library anywhere in the example corpus, so this package is built on
// encoding/xml - the one ambient concern in this engine with no pack
// precedent to imitate.
package xmlclient

import (
	"encoding/xml"
	"fmt"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/types"
)

// joinedFrame is the server's acknowledgement of a join request.
type joinedFrame struct {
	XMLName xml.Name `xml:"joined"`
	RoomID  string   `xml:"roomId,attr"`
}

// welcomeMessageFrame reports which color the server assigned this client.
type welcomeMessageFrame struct {
	XMLName xml.Name `xml:"data"`
	Color   string   `xml:"color,attr"`
}

// errorFrame is the match server's report of an illegal move it rejected.
// Not in spec.md's external-interface list, but present in the original
// client (xml_client.rs logs any unrecognized "data" class) - treated as
// connection-fatal, the same as any other wire-protocol parse failure.
type errorFrame struct {
	XMLName xml.Name `xml:"data"`
	Message string   `xml:"message,attr"`
}

// mementoFrame carries the authoritative game state after a move by
// either side.
type mementoFrame struct {
	XMLName xml.Name   `xml:"data"`
	State   stateFrame `xml:"state"`
}

type stateFrame struct {
	Turn  int        `xml:"turn,attr"`
	Board boardFrame `xml:"board"`
}

type boardFrame struct {
	Fields fieldsFrame `xml:"fields"`
}

type fieldsFrame struct {
	Field []fieldFrame `xml:"field"`
}

type fieldFrame struct {
	X     int    `xml:"x,attr"`
	Y     int    `xml:"y,attr"`
	State string `xml:"state,attr"`
}

const moveRequestClass = "sc.framework.plugins.protocol.MoveRequest"

// colorFromString maps the server's RED/BLUE welcome-message attribute
// onto types.Color.
func colorFromString(s string) (types.Color, error) {
	switch s {
	case "RED":
		return types.Red, nil
	case "BLUE":
		return types.Blue, nil
	default:
		return types.Red, fmt.Errorf("xmlclient: unknown color %q", s)
	}
}

// fieldType maps one <field state="..."/> value onto types.FieldType.
func fieldType(s string) types.FieldType {
	switch s {
	case "RED":
		return types.RedField
	case "BLUE":
		return types.BlueField
	case "OBSTRUCTED":
		return types.Obstacle
	default:
		return types.Empty
	}
}

// toGameState rebuilds a board.GameState from a parsed memento: turn is
// the server's ply counter (red moves on even turns, blue on odd, since
// red always moves first), the board is rebuilt field by field rather
// than trusting any incremental state this client held before.
func (f *stateFrame) toGameState() *board.GameState {
	var b board.Board
	for _, field := range f.Board.Fields.Field {
		sq := types.NewSquare(field.X, field.Y)
		if sq == types.SqNone {
			continue
		}
		switch fieldType(field.State) {
		case types.RedField:
			b.Red = b.Red.Set(sq)
		case types.BlueField:
			b.Blue = b.Blue.Set(sq)
		case types.Obstacle:
			b.Obstacles = b.Obstacles.Set(sq)
		}
	}
	turn := types.Red
	if f.Turn%2 != 0 {
		turn = types.Blue
	}
	gs := board.NewGameState(b, turn)
	gs.Ply = f.Turn
	return gs
}

// directionName renders d in the UP/UP_RIGHT/.../UP_LEFT vocabulary the
// wire protocol uses, grounded on the original client's Direction::Display
// impl (original_source/game_sdk/src/states/direction.rs).
func directionName(d types.Direction) string {
	switch d {
	case types.North:
		return "UP"
	case types.NorthEast:
		return "UP_RIGHT"
	case types.East:
		return "RIGHT"
	case types.SouthEast:
		return "DOWN_RIGHT"
	case types.South:
		return "DOWN"
	case types.SouthWest:
		return "DOWN_LEFT"
	case types.West:
		return "LEFT"
	default: // NorthWest
		return "UP_LEFT"
	}
}

// directionOf derives the compass direction of m from its endpoints. A
// Piranhas move is always a straight line (orthogonal or diagonal), so
// the sign of the column/row delta alone identifies one of the eight
// directions regardless of how far the fish travelled.
func directionOf(m types.Move) (types.Direction, bool) {
	dc := sign(m.To().Col() - m.From().Col())
	dr := sign(m.To().Row() - m.From().Row())
	for _, d := range types.AllDirections {
		if d.DCol() == dc && d.DRow() == dr {
			return d, true
		}
	}
	return types.North, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// moveXML renders m as the "<data class=\"move\" .../>" fragment the
// server expects as the payload of a <room> reply.
func moveXML(m types.Move) (string, error) {
	d, ok := directionOf(m)
	if !ok {
		return "", fmt.Errorf("xmlclient: move %s is not a straight line", m.String())
	}
	from := m.From()
	return fmt.Sprintf(`<data class="move" x="%d" y="%d" direction="%s"></data>`,
		from.Col(), from.Row(), directionName(d)), nil
}
