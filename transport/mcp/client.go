package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/sokoban/game/collection"
	"github.com/wricardo/sokoban/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sokoban",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sokoban - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Push every crate ($) onto a goal square (.). The worker (@) can only push
one crate at a time and can never pull. A crate on a goal shows as *, the
worker standing on a goal shows as +.

AVAILABLE TOOLS:
- level_state: Current level with ASCII grid
- move: Single step (left/right/up/down), pushing a crate if one is ahead
- move_until: Walk or push in one direction until blocked
- move_to: Let the engine pathfind the worker to a free square
- push_crate: Let the engine plan and execute a crate push to a target
- undo / redo: Take back or replay moves
- reset_level, next_level, previous_level: Level control
- move_history: View past moves
- create_session, get_session, list_sessions: Session management
- list_collections, load_collection: Level collections
- game_instructions: Full rules and strategy notes

Careful: pushes are irreversible in play (use undo) and a crate pushed
into a corner is usually stuck for good.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	sessionIDProp := map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
	directionProp := map[string]interface{}{
		"type":        "string",
		"enum":        []string{"left", "right", "up", "down"},
		"description": "Direction to move",
	}
	positionProps := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "object",
			"description": desc,
			"properties": map[string]interface{}{
				"x": map[string]interface{}{"type": "integer"},
				"y": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x", "y"},
		}
	}

	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new play session with optional collection selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"collection": map[string]interface{}{
					"type":        "string",
					"description": "Name of the level collection to play (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active play sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game state
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "level_state",
		Description: "Get the current level with its ASCII grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleLevelState)

	// Movement
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Step the worker one square, pushing a crate if one is ahead",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"direction":  directionProp,
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_until",
		Description: "Move in one direction until blocked; set push to shove a crate along",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"direction":  directionProp,
				"push": map[string]interface{}{
					"type":        "boolean",
					"description": "Push a crate along the way (default false)",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMoveUntil)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_to",
		Description: "Pathfind the worker to a target square without disturbing crates",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"to":         positionProps("Target square for the worker"),
			},
			Required: []string{"session_id", "to"},
		},
	}, c.handleMoveTo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "push_crate",
		Description: "Plan and execute a crate push from one square to another, moving the worker as needed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"from":       positionProps("Square the crate currently occupies"),
				"to":         positionProps("Square the crate should end up on"),
			},
			Required: []string{"session_id", "from", "to"},
		},
	}, c.handlePushCrate)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "undo",
		Description: "Take back the last move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleUndo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "redo",
		Description: "Replay the last undone move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleRedo)

	// Level control
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_level",
		Description: "Restart the current level from scratch",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleResetLevel)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "next_level",
		Description: "Advance to the next level (requires the current one solved, unless already solved before)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handleNextLevel)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "previous_level",
		Description: "Go back one level",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
			},
			Required: []string{"session_id"},
		},
	}, c.handlePreviousLevel)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	// Collections
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_collections",
		Description: "List available level collections",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListCollections)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "load_collection",
		Description: "Switch the session to another level collection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProp,
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Collection name",
				},
			},
			Required: []string{"session_id", "name"},
		},
	}, c.handleLoadCollection)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	collectionName, _ := args["collection"].(string)

	body := map[string]string{}
	if collectionName != "" {
		body["collection"] = collectionName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nCollection: %s\n\n%s",
		session.ID, session.Collection, formatLevel(session.Level))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Collection: %s, Created: %s)\n",
			s.ID, s.Collection, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLevelState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var level service.LevelSnapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/level", sessionID), nil, &level)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatLevel(&level)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
	}

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleMoveUntil(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	push, _ := args["push"].(bool)

	body := map[string]interface{}{
		"direction": direction,
		"push":      push,
	}

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move-until", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleMoveTo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	to, err := positionArg(args, "to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := map[string]interface{}{
		"to": to,
	}

	var result service.CommandResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move-to", sessionID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handlePushCrate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	from, err := positionArg(args, "from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := positionArg(args, "to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := map[string]interface{}{
		"from": from,
		"to":   to,
	}

	var result service.CommandResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/push-crate", sessionID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.simpleCommand(request, "undo")
}

func (c *Client) handleRedo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.simpleCommand(request, "redo")
}

func (c *Client) handleResetLevel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.simpleCommand(request, "reset")
}

func (c *Client) handleNextLevel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.simpleCommand(request, "next")
}

func (c *Client) handlePreviousLevel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.simpleCommand(request, "previous")
}

// simpleCommand forwards the bodyless session commands.
func (c *Client) simpleCommand(request mcp.CallToolRequest, path string) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/%s", sessionID, path), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListCollections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var collections []collection.Info
	err := c.apiCall("GET", "/api/collections", nil, &collections)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Collections:\n\n"
	for _, col := range collections {
		result += fmt.Sprintf("• %s — %s (%d levels)\n", col.ShortName, col.Name, col.Levels)
		if col.Description != "" {
			result += fmt.Sprintf("  %s\n", col.Description)
		}
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLoadCollection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	name, _ := args["name"].(string)

	body := map[string]string{"name": name}

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/collection", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Sokoban - Complete Instructions

GAME OBJECTIVE:
Push every crate onto a goal square. The level is solved when no goal is
left empty.

GRID LEGEND:
• @ - Worker (your position)
• + - Worker standing on a goal
• $ - Crate
• * - Crate sitting on a goal (objective partially complete)
• . - Empty goal square
• # - Wall (impassable)
• (space) - Floor inside the level, or the void outside its walls

GAME MECHANICS:
• The worker moves one square at a time: left, right, up, down
• Walking into a crate pushes it one square in the same direction
• A push only works when the square behind the crate is free
• Crates can never be pulled, and only one crate moves at a time
• Moves and pushes are counted separately; fewer of both is better

COMMON DEADLOCKS TO AVOID:
• A crate pushed into a corner (two perpendicular walls) is stuck forever
  unless the corner is a goal
• A crate pushed flush against a wall can only slide along that wall; if
  no goal lies on that wall, the level is lost
• Two crates side by side against a wall block each other

MOVEMENT TOOLS:
- move: one step; pushes a crate when one is directly ahead
- move_until: keep stepping in one direction until something blocks
- move_to: the engine walks the worker to a free square for you (it will
  not push any crate on the way)
- push_crate: the engine plans a full push sequence, repositioning the
  worker between pushes as needed; it fails cleanly when no push path
  exists

UNDO / REDO:
- Every move is recorded; undo rewinds one move (pulling the crate back
  if the move was a push), redo replays it
- A new move after undo discards the redo tail, unless it is exactly the
  move that would have been redone

LEVELS AND PROGRESS:
- Levels come in collections; solve a level to unlock the next
- Progress is saved per collection: best move count and best push count
  are tracked independently
- reset_level restarts the current level; already-solved levels can be
  revisited freely

SESSION MANAGEMENT:
- Multiple play sessions can run simultaneously
- Each session has a unique 4-character ID and independent progress
- Use session-specific tools for multi-game management

STRATEGY NOTES:
- Plan the final position of every crate before the first push
- Push crates toward goals along walls only when a goal lies on that wall
- Use move_to liberally: repositioning the worker is free of pushes
- When stuck, undo back to the last safe position instead of resetting`

	return mcp.NewToolResultText(instructions), nil
}

// positionArg extracts an {x, y} object argument.
func positionArg(args map[string]interface{}, key string) (map[string]int, error) {
	raw, ok := args[key].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be an object with x and y", key)
	}
	x, okX := raw["x"].(float64)
	y, okY := raw["y"].(float64)
	if !okX || !okY {
		return nil, fmt.Errorf("argument %q must carry integer x and y", key)
	}
	return map[string]int{"x": int(x), "y": int(y)}, nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nCollection: %s\nCreated: %s\n\n%s",
		session.ID, session.Collection,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatLevel(session.Level))
}

func formatLevel(level *service.LevelSnapshot) string {
	if level == nil {
		return "No level available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Level %d/%d (%s) | Moves: %d | Pushes: %d | Goals left: %d\n\n",
		level.Rank, level.TotalLevels, level.Collection,
		level.Moves, level.Pushes, level.EmptyGoals))

	for _, row := range level.Grid {
		result.WriteString(row)
		result.WriteString("\n")
	}

	result.WriteString(fmt.Sprintf("\nWorker: (%d,%d) facing %s",
		level.Worker.X, level.Worker.Y, level.WorkerDirection))

	if level.Finished {
		result.WriteString("\n\n🎉 LEVEL SOLVED!")
	}

	return result.String()
}

func formatCommandResult(result *service.CommandResult) string {
	response := ""
	if result.Success {
		response = "✓ Command successful\n"
	} else {
		response = "✗ Command failed\n"
	}

	if result.Message != "" {
		response += fmt.Sprintf("Message: %s\n", result.Message)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			line := fmt.Sprintf("- %s", event.Type)
			if event.From != event.To {
				line += fmt.Sprintf(" %s %s -> %s", event.Direction, event.From, event.To)
			}
			if event.Reason != "" {
				line += fmt.Sprintf(" (%s)", event.Reason)
			}
			response += line + "\n"
		}
	}

	if result.Update != nil {
		u := result.Update
		if u.FirstTimeSolved {
			response += fmt.Sprintf("First time solving level %d!\n", u.Rank)
		}
		if u.ImprovedMoves {
			response += "New best move count.\n"
		}
		if u.ImprovedPushes {
			response += "New best push count.\n"
		}
	}

	response += "\n" + formatLevel(result.Level)
	return response
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	if len(history.Moves) == 0 {
		return result + "(no moves)"
	}

	for _, move := range history.Moves {
		kind := "walk"
		if move.Push {
			kind = "push"
		}
		result += fmt.Sprintf("%d. %s (%s)\n", move.Number, move.Direction, kind)
	}

	return result
}
