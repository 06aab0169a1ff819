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
	"io"
	"net"
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/engine"
	"github.com/frankkopp/piranhas/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

// A non-terminal, asymmetric test board: two disconnected fish per
// color so neither side already satisfies the one-swarm win condition.
const testMemento = `<data class="memento"><state turn="0"><board><fields>` +
	`<field x="0" y="0" state="RED"/>` +
	`<field x="9" y="0" state="RED"/>` +
	`<field x="0" y="9" state="BLUE"/>` +
	`<field x="9" y="9" state="BLUE"/>` +
	`</fields></board></state></data>`

func TestClientRunAnswersMoveRequestAndStopsOnLeft(t *testing.T) {
	original := config.Settings.Search.MoveTimeMillis
	config.Settings.Search.MoveTimeMillis = 50
	defer func() { config.Settings.Search.MoveTimeMillis = original }()

	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	c := NewClient(clientConn, engine.NewEngine())

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	_, err := serverConn.Write([]byte(`<joined roomId="42"/>`))
	require.NoError(t, err)
	_, err = serverConn.Write([]byte(`<data class="welcomeMessage" color="RED"></data>`))
	require.NoError(t, err)
	_, err = serverConn.Write([]byte(testMemento))
	require.NoError(t, err)
	_, err = serverConn.Write([]byte(`<data class="sc.framework.plugins.protocol.MoveRequest"></data>`))
	require.NoError(t, err)

	buf := make([]byte, 4096)
	n, err := serverConn.Read(buf)
	require.NoError(t, err)
	reply := string(buf[:n])
	assert.Contains(t, reply, `room roomId="42"`)
	assert.Contains(t, reply, `class="move"`)

	color, ok := c.Color()
	assert.True(t, ok)
	assert.Equal(t, types.Red, color)

	_, err = serverConn.Write([]byte(`<left/>`))
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after <left/>")
	}
}

func TestClientColorUnsetBeforeWelcomeMessage(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	c := NewClient(clientConn, engine.NewEngine())
	_, ok := c.Color()
	assert.False(t, ok)
}

func TestClientRunReportsServerError(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	c := NewClient(clientConn, engine.NewEngine())

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	_, err := serverConn.Write([]byte(`<data class="error" message="illegal move"></data>`))
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "illegal move")
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after error frame")
	}
}

func TestJoinWritesProtocolThenJoinFrame(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	c := NewClient(clientConn, engine.NewEngine())
	go func() {
		_ = c.Join("")
	}()

	buf := make([]byte, len("<protocol>"))
	_, err := io.ReadFull(serverConn, buf)
	require.NoError(t, err)
	assert.Equal(t, "<protocol>", string(buf))

	buf = make([]byte, 512)
	n, err := serverConn.Read(buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:n]), `gameType="swc_2019_piranhas"`)
}

func TestJoinWithReservationUsesJoinPrepared(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	c := NewClient(clientConn, engine.NewEngine())
	go func() {
		_ = c.Join("abc123")
	}()

	buf := make([]byte, len("<protocol>"))
	_, err := io.ReadFull(serverConn, buf)
	require.NoError(t, err)

	buf = make([]byte, 512)
	n, err := serverConn.Read(buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:n]), `reservationCode="abc123"`)
}
