package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lifepath/internal/career"
	"lifepath/internal/children"
	"lifepath/internal/family"
	"lifepath/internal/game"
	"lifepath/internal/health"
	"lifepath/internal/model"
)

var errBadArgs = errors.New("invalid arguments")

// CommandRequest is the request body for POST /api/life/cmd.
type CommandRequest struct {
	Cmd  string         `json:"cmd"`
	Args map[string]any `json:"args"`
}

// CommandResponse is the response for POST /api/life/cmd. Feedback events
// from failed actions are returned alongside the error.
type CommandResponse struct {
	OK        bool             `json:"ok"`
	Character *model.Character `json:"character,omitempty"`
	Event     *model.Event     `json:"event,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// POST /api/life/cmd
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	var req CommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Args == nil {
		req.Args = map[string]any{}
	}

	out, err := Execute(r.Context(), e, req.Cmd, req.Args)
	resp := CommandResponse{OK: err == nil, Event: out.Event}
	if out.Character.ID != "" {
		c := out.Character
		resp.Character = &c
	}
	if err != nil {
		resp.Error = err.Error()
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			h.log.Error("command failed", "cmd", req.Cmd, "err", err)
		}
		writeJSON(w, code, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Execute dispatches a named command to the engine action it names.
func Execute(ctx context.Context, e *game.Engine, cmd string, args map[string]any) (game.Outcome, error) {
	switch cmd {
	case game.ActionFamilyInteract:
		id, action, err := idAndAction(args, "memberId")
		if err != nil {
			return game.Outcome{}, err
		}
		return e.InteractFamily(ctx, id, family.Action(action))
	case game.ActionStartDating:
		return e.StartDating(ctx)
	case game.ActionBreakUp:
		return withID(args, "relationshipId", func(id string) (game.Outcome, error) { return e.BreakUp(ctx, id) })
	case game.ActionCheat:
		return withID(args, "relationshipId", func(id string) (game.Outcome, error) { return e.Cheat(ctx, id) })
	case game.ActionGift:
		return withID(args, "relationshipId", func(id string) (game.Outcome, error) { return e.GiveGift(ctx, id) })
	case game.ActionFlirt:
		return flirt(ctx, e, args)
	case game.ActionFirstJob:
		return e.FirstJob(ctx)
	case game.ActionTeenCrime:
		return e.TeenCrime(ctx)
	case game.ActionDrugs:
		return e.TryDrugs(ctx)
	case game.ActionSneakOut:
		return e.SneakOut(ctx)
	case game.ActionApplyJob:
		return withID(args, "jobId", func(id string) (game.Outcome, error) { return e.ApplyJob(ctx, id) })
	case game.ActionWork:
		return withID(args, "action", func(a string) (game.Outcome, error) { return e.Work(ctx, career.WorkAction(a)) })
	case game.ActionEnroll:
		return withID(args, "major", func(m string) (game.Outcome, error) { return e.Enroll(ctx, m) })
	case game.ActionBuyAsset:
		return withID(args, "assetId", func(id string) (game.Outcome, error) { return e.BuyAsset(ctx, id) })
	case game.ActionSellAsset:
		return withID(args, "assetId", func(id string) (game.Outcome, error) { return e.SellAsset(ctx, id) })
	case game.ActionHaveChild:
		partner, err := getStringOr(args, "partnerName")
		if err != nil {
			return game.Outcome{}, err
		}
		return e.HaveChild(ctx, partner)
	case game.ActionChildInteract:
		id, action, err := idAndAction(args, "childId")
		if err != nil {
			return game.Outcome{}, err
		}
		return e.InteractChild(ctx, id, children.Action(action))
	case game.ActionCommitCrime:
		return withID(args, "crimeId", func(id string) (game.Outcome, error) { return e.CommitCrime(ctx, id) })
	case game.ActionEscape:
		return e.Escape(ctx)
	case game.ActionBribe:
		return e.Bribe(ctx)
	case game.ActionHospital:
		return withID(args, "kind", func(k string) (game.Outcome, error) { return e.VisitHospital(ctx, health.VisitKind(k)) })
	case game.ActionTreatDisease:
		return withID(args, "diseaseId", func(id string) (game.Outcome, error) { return e.TreatDisease(ctx, id) })
	default:
		return game.Outcome{}, fmt.Errorf("%w: command %q", model.ErrUnknownAction, cmd)
	}
}

func withID(args map[string]any, key string, fn func(string) (game.Outcome, error)) (game.Outcome, error) {
	id, err := getString(args, key)
	if err != nil {
		return game.Outcome{}, err
	}
	return fn(id)
}

func idAndAction(args map[string]any, key string) (string, string, error) {
	id, err := getString(args, key)
	if err != nil {
		return "", "", err
	}
	action, err := getString(args, "action")
	if err != nil {
		return "", "", err
	}
	return id, action, nil
}

func flirt(ctx context.Context, e *game.Engine, args map[string]any) (game.Outcome, error) {
	id, err := getString(args, "relationshipId")
	if err != nil {
		return game.Outcome{}, err
	}
	line, err := getStringOr(args, "line")
	if err != nil {
		return game.Outcome{}, err
	}
	success, _ := args["success"].(bool)
	delta := model.RelationshipStats{
		Trust:      getIntOr(args, "trust", 0),
		Attraction: getIntOr(args, "attraction", 0),
		Loyalty:    getIntOr(args, "loyalty", 0),
	}
	return e.Flirt(ctx, id, line, success, delta)
}

// Helper to get string from args
func getString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: missing required field: %s", errBadArgs, key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: field %s must be a non-empty string", errBadArgs, key)
	}
	return s, nil
}

// Helper to get optional string.
func getStringOr(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %s must be a string", errBadArgs, key)
	}
	return s, nil
}

// Helper to get optional int with default (JSON numbers are float64)
func getIntOr(args map[string]any, key string, def int) int {
	v, ok := args[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int(f)
}
