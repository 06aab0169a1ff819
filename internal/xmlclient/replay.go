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
	"fmt"
	"os"
	"strings"
)

// ReplayWriter mirrors the inbound memento stream of one game to a
// plain-text XML file, purely for later human/tool inspection - nothing
// in this engine reads a replay file back. Per the I/O-error error
// category, a write failure here must never abort the game it is
// recording; callers log and continue instead of propagating it upward
// as fatal.
type ReplayWriter struct {
	file *os.File
}

// NewReplayWriter creates (truncating any existing file) the replay file
// at path.
func NewReplayWriter(path string) (*ReplayWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("xmlclient: creating replay file: %w", err)
	}
	return &ReplayWriter{file: f}, nil
}

// Close flushes and closes the underlying file.
func (w *ReplayWriter) Close() error {
	return w.file.Close()
}

// writeMemento appends one "<room><data class=\"memento\">...</data></room>"
// line, byte-for-byte the same field values the server sent, per spec.md's
// informational replay format.
func (w *ReplayWriter) writeMemento(f *stateFrame) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<room><data class="memento"><state turn="%d"><board><fields>`, f.Turn)
	for _, field := range f.Board.Fields.Field {
		fmt.Fprintf(&sb, `<field x="%d" y="%d" state="%s"/>`, field.X, field.Y, field.State)
	}
	sb.WriteString("</fields></board></state></data></room>\n")
	_, err := w.file.WriteString(sb.String())
	return err
}

// writeResult appends the terminal "<data class=\"result\">" marker that
// ends a replay file.
func (w *ReplayWriter) writeResult() error {
	_, err := w.file.WriteString("<data class=\"result\"></data>\n")
	return err
}
