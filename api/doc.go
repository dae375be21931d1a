// Package api provides the HTTP REST surface for playing levels.
//
// The api package implements:
//   - RESTful endpoints for movement, pathfinding and level control
//   - Session management endpoints
//   - Collection listing and selection
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional {"collection": "..."})
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Movement:
//   - POST /api/sessions/{id}/move - Single step: {"direction": "left|right|up|down"}
//   - POST /api/sessions/{id}/move-until - Walk/push until blocked: {"direction": "...", "push": true}
//   - POST /api/sessions/{id}/move-to - Pathfind the worker: {"to": {"x": 3, "y": 1}}
//   - POST /api/sessions/{id}/push-crate - Push a crate along a found path:
//     {"from": {"x": 2, "y": 1}, "to": {"x": 4, "y": 1}}
//   - POST /api/sessions/{id}/undo - Take back the last move
//   - POST /api/sessions/{id}/redo - Replay an undone move
//
// Level Control:
//   - POST /api/sessions/{id}/reset - Restart the current level
//   - POST /api/sessions/{id}/next - Advance to the next level
//   - POST /api/sessions/{id}/previous - Go back one level
//   - POST /api/sessions/{id}/save - Save progress now
//
// State:
//   - GET /api/sessions/{id}/level - Current level snapshot (ASCII grid included)
//   - GET /api/sessions/{id}/history - Move history with pagination
//
// Collections:
//   - GET /api/collections - List available level collections
//   - POST /api/sessions/{id}/collection - Switch collection: {"name": "original"}
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Command endpoints return a
// CommandResult with the engine events produced by the command and a
// fresh level snapshot:
//
//	{
//	  "success": true,
//	  "events": [{"type": "worker_moved", ...}, {"type": "crate_moved", ...}],
//	  "level": {"grid": ["#####", "#@$.#", "#####"], "moves": 3, ...}
//	}
//
// Blocked moves are not HTTP errors: they come back with status 200,
// "success": false and a move_blocked event, mirroring how the engine
// reports them.
//
// Error Handling:
//
// Real failures (unknown session, bad request body) are returned as JSON
// with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
