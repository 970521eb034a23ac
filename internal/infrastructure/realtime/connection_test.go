package realtime

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestConnectionSendAfterCloseFails(t *testing.T) {
	conn := newTestConnection()

	conn.Close(websocket.CloseNormalClosure, "done")

	assert.Error(t, conn.Send([]byte("late")))
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	conn := newTestConnection()

	conn.Close(websocket.CloseNormalClosure, "done")
	conn.Close(websocket.CloseGoingAway, "again")

	assert.Error(t, conn.Send([]byte("late")))
}

// A reconnect can close a connection while a fan-out to the same handle is in
// flight. Whichever side wins, Send must degrade to an error or a dropped
// payload, never a panic.
func TestConnectionSendConcurrentWithClose(t *testing.T) {
	for i := 0; i < 200; i++ {
		conn := newTestConnection()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			conn.Close(websocket.CloseNormalClosure, "replaced")
		}()
		go func() {
			defer wg.Done()
			_ = conn.Send([]byte("in flight"))
		}()
		wg.Wait()
	}
}

func TestConnectionSendFillsBufferThenCloses(t *testing.T) {
	conn := newTestConnection()

	// Without a running write loop nothing drains the buffer.
	for i := 0; i < cap(conn.send); i++ {
		assert.NoError(t, conn.Send([]byte("x")))
	}

	assert.Error(t, conn.Send([]byte("overflow")))
	assert.Error(t, conn.Send([]byte("after close")))
}
