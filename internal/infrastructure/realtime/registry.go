package realtime

import (
	"sync"
)

// Registry tracks which users currently hold a live connection. It is the
// single process-local source of presence: populated when a client announces
// its identity, cleared when the socket closes, empty at process start.
type Registry struct {
	mu          sync.RWMutex
	connections map[string]*Connection // userID -> connection
	connUsers   map[string]string      // connectionID -> userID
}

// NewRegistry constructs an initialized Registry.
func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[string]*Connection),
		connUsers:   make(map[string]string),
	}
}

// Register associates the connection with userID. If the user already holds a
// different connection (a second tab), the previous one is forgotten and
// closed after the swap so stale handles never receive fan-out.
func (r *Registry) Register(userID string, conn *Connection) {
	var previous *Connection

	r.mu.Lock()
	if existing, ok := r.connections[userID]; ok && existing.ID != conn.ID {
		previous = existing
		delete(r.connUsers, existing.ID)
	}
	// A socket re-announcing as a different user drops its old identity.
	if prevUser, ok := r.connUsers[conn.ID]; ok && prevUser != userID {
		if current, ok := r.connections[prevUser]; ok && current.ID == conn.ID {
			delete(r.connections, prevUser)
		}
	}
	r.connections[userID] = conn
	r.connUsers[conn.ID] = userID
	r.mu.Unlock()

	if previous != nil {
		previous.Close(4001, "session replaced")
	}
}

// Unregister removes the entry for the closing connection. The close event
// carries the handle, not the user, so the lookup goes through the reverse
// map. No-op when the connection was never registered or already superseded.
func (r *Registry) Unregister(conn *Connection) {
	r.mu.Lock()
	userID, ok := r.connUsers[conn.ID]
	if ok {
		delete(r.connUsers, conn.ID)
		if current, ok := r.connections[userID]; ok && current.ID == conn.ID {
			delete(r.connections, userID)
		}
	}
	r.mu.Unlock()
}

// Resolve returns the live connection for userID. Absence means the user is
// not currently connected, which is a normal outcome.
func (r *Registry) Resolve(userID string) (*Connection, bool) {
	r.mu.RLock()
	conn, ok := r.connections[userID]
	r.mu.RUnlock()
	return conn, ok
}

// NotifyUser delivers payload to the current connection of the given user.
// It reports false when the user has no live connection or the push failed.
func (r *Registry) NotifyUser(userID string, payload []byte) bool {
	conn, ok := r.Resolve(userID)
	if !ok {
		return false
	}
	return conn.Send(payload) == nil
}

// Close terminates all tracked connections and clears registry state.
func (r *Registry) Close() {
	r.mu.Lock()
	connections := make([]*Connection, 0, len(r.connections))
	for _, conn := range r.connections {
		connections = append(connections, conn)
	}
	r.connections = make(map[string]*Connection)
	r.connUsers = make(map[string]string)
	r.mu.Unlock()

	for _, conn := range connections {
		conn.Close(1001, "registry shutdown")
	}
}
