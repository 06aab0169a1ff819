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

package xmlclient

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/op/go-logging"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/engine"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/types"
)

// Client drives one game over an already-open connection to the match
// server: it answers every MoveRequest frame by calling eng.OnMoveRequest
// on whatever state the last memento described, and otherwise just keeps
// its own bookkeeping (room id, assigned color) current.
type Client struct {
	log *logging.Logger

	conn    net.Conn
	decoder *xml.Decoder
	eng     *engine.Engine
	replay  *ReplayWriter

	gs       *board.GameState
	roomID   string
	myColor  types.Color
	hasColor bool
}

// NewClient wraps conn for one game. eng must already exist; the caller
// owns its lifetime.
func NewClient(conn net.Conn, eng *engine.Engine) *Client {
	return &Client{
		log:     myLogging.GetLog(),
		conn:    conn,
		decoder: xml.NewDecoder(conn),
		eng:     eng,
	}
}

// Color reports the color the server assigned this client in its
// welcomeMessage frame, or (Red, false) before that frame has arrived.
func (c *Client) Color() (types.Color, bool) {
	return c.myColor, c.hasColor
}

// SetReplay attaches a ReplayWriter that mirrors every inbound memento
// and the terminal result to disk. A nil replay (the default) disables
// this entirely - the caller only sets one when --xml was given.
func (c *Client) SetReplay(w *ReplayWriter) {
	c.replay = w
}

// Play dials host:port, joins (by game type or, if reservation is
// non-empty, by reservation code) and runs the game to completion. This
// mirrors xml_client.rs's XMLClient::run: connect, send "<protocol>",
// send the join frame, then read frames until the server closes the
// room.
func Play(host string, port int, reservation string, eng *engine.Engine, replay *ReplayWriter) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("xmlclient: connect to %s: %w", addr, err)
	}
	defer conn.Close()

	c := NewClient(conn, eng)
	c.SetReplay(replay)
	if err := c.Join(reservation); err != nil {
		return err
	}
	return c.Run()
}

// Join sends the session opener and the join request. An empty
// reservation joins by game type; a non-empty one joins a prepared room.
func (c *Client) Join(reservation string) error {
	if err := c.send("<protocol>"); err != nil {
		return err
	}
	join := `<join gameType="swc_2019_piranhas"/>`
	if reservation != "" {
		join = fmt.Sprintf(`<joinPrepared reservationCode="%s"/>`, reservation)
	}
	return c.send(join)
}

func (c *Client) send(frame string) error {
	c.log.Debugf(">> %s", frame)
	_, err := io.WriteString(c.conn, frame)
	return err
}

// Run reads and dispatches frames until the server ends the room
// (CloseConnection or left) or a parse/protocol error occurs. Per the
// wire-protocol-parse-failure error category, any error here is fatal to
// the connection: Run returns it rather than trying to resynchronize.
func (c *Client) Run() error {
	for {
		tok, err := c.decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("xmlclient: reading frame: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		done, err := c.handleElement(se)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (c *Client) handleElement(se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "joined":
		var f joinedFrame
		if err := c.decoder.DecodeElement(&f, &se); err != nil {
			return false, err
		}
		c.roomID = f.RoomID
		c.log.Infof("joined room %s", c.roomID)
		return false, nil

	case "data":
		return false, c.handleDataElement(se)

	case "sc.protocol.responses.CloseConnection":
		c.log.Infof("connection closed by server")
		return true, c.decoder.Skip()

	case "left":
		c.log.Infof("left room %s", c.roomID)
		return true, c.decoder.Skip()

	default:
		return false, c.decoder.Skip()
	}
}

func (c *Client) handleDataElement(se xml.StartElement) error {
	switch attrValue(se, "class") {
	case "welcomeMessage":
		var f welcomeMessageFrame
		if err := c.decoder.DecodeElement(&f, &se); err != nil {
			return err
		}
		color, err := colorFromString(f.Color)
		if err != nil {
			return fmt.Errorf("xmlclient: welcomeMessage: %w", err)
		}
		c.myColor = color
		c.hasColor = true
		c.log.Infof("assigned color %s", color.String())
		return nil

	case "memento":
		var f mementoFrame
		if err := c.decoder.DecodeElement(&f, &se); err != nil {
			return err
		}
		c.gs = f.State.toGameState()
		if c.replay != nil {
			if err := c.replay.writeMemento(&f.State); err != nil {
				// I/O errors on replay output must never abort the game.
				c.log.Errorf("replay write failed: %v", err)
			}
		}
		return nil

	case moveRequestClass:
		if err := c.decoder.Skip(); err != nil {
			return err
		}
		return c.answerMoveRequest()

	case "result":
		if err := c.decoder.Skip(); err != nil {
			return err
		}
		if c.replay != nil {
			if err := c.replay.writeResult(); err != nil {
				c.log.Errorf("replay write failed: %v", err)
			}
		}
		return nil

	case "error":
		var f errorFrame
		if err := c.decoder.DecodeElement(&f, &se); err != nil {
			return err
		}
		return fmt.Errorf("xmlclient: server reported an illegal move: %s", f.Message)

	default:
		return c.decoder.Skip()
	}
}

func (c *Client) answerMoveRequest() error {
	if c.gs == nil {
		return errors.New("xmlclient: MoveRequest received before any memento")
	}
	move, err := c.eng.OnMoveRequest(c.gs)
	if err != nil {
		return fmt.Errorf("xmlclient: %w", err)
	}
	xmlMove, err := moveXML(move)
	if err != nil {
		return err
	}
	return c.send(fmt.Sprintf(`<room roomId="%s">%s</room>`, c.roomID, xmlMove))
}

func attrValue(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
