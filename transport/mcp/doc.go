// Package mcp provides a Model Context Protocol surface for playing levels.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for movement, pathfinding and level control
//   - Session-aware command execution
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - level_state: Current level with ASCII grid visualization
//   - move: Execute a single step, pushing a crate if one is ahead
//   - move_until: Walk or push in one direction until blocked
//   - move_to: Pathfind the worker to a free square
//   - push_crate: Plan and execute a crate push to a target square
//   - undo / redo: Take back or replay moves
//   - reset_level, next_level, previous_level: Level control
//   - move_history: Retrieve move history with pagination
//   - create_session, get_session, list_sessions: Session management
//   - list_collections, load_collection: Level collections
//   - game_instructions: Full rules and deadlock warnings
//
// Architecture:
//
// The client is a thin proxy over the REST API: every tool call turns
// into one HTTP request against the running server, so MCP clients and
// web clients always observe the same state and the same WebSocket
// broadcasts fire for both.
//
// Session Management:
//
// All play tools take a session_id parameter. Each session carries its
// own level, move log and save files, so AI agents can manage several
// concurrent attempts independently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
