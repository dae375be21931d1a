// Package websocket provides real-time transport for play sessions.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Broadcasting of command results and level snapshots
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. After each executed command the hub sends a
// Message carrying the command result and the fresh level snapshot, so a
// watching client can redraw the board without polling:
//
//	{
//	  "session_id": "ab12",
//	  "event": "command_executed",
//	  "result": { "success": true, "events": [...], "level": {...} },
//	  "level": { "grid": ["#####", "#@$.#", "#####"], ... }
//	}
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=ab12) when establishing the connection.
// Updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	// on upgrade requests:
//	hub.ServeWS(w, r, sessionID)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and send messages simultaneously
// without blocking each other.
package websocket
