package game

import (
	"context"
	"fmt"

	"lifepath/internal/assets"
	"lifepath/internal/career"
	"lifepath/internal/children"
	"lifepath/internal/crime"
	"lifepath/internal/family"
	"lifepath/internal/health"
	"lifepath/internal/model"
	"lifepath/internal/sim"
	"lifepath/internal/teen"
)

// Action names, as used by metrics and the command dispatcher.
const (
	ActionFamilyInteract = "family.interact"
	ActionStartDating    = "relationship.start"
	ActionBreakUp        = "relationship.break_up"
	ActionCheat          = "relationship.cheat"
	ActionGift           = "relationship.gift"
	ActionFlirt          = "relationship.flirt"
	ActionFirstJob       = "teen.first_job"
	ActionTeenCrime      = "teen.crime"
	ActionDrugs          = "teen.drugs"
	ActionSneakOut       = "teen.sneak_out"
	ActionApplyJob       = "job.apply"
	ActionWork           = "job.work"
	ActionEnroll         = "college.enroll"
	ActionBuyAsset       = "asset.buy"
	ActionSellAsset      = "asset.sell"
	ActionHaveChild      = "child.have"
	ActionChildInteract  = "child.interact"
	ActionCommitCrime    = "crime.commit"
	ActionEscape         = "prison.escape"
	ActionBribe          = "prison.bribe"
	ActionHospital       = "hospital.visit"
	ActionTreatDisease   = "disease.treat"
)

// event adapts the (character, event, error) shape of the domain packages.
func event(c model.Character, ev model.Event, err error) (model.Character, *model.Event, error) {
	if err != nil && ev.ID == "" {
		return c, nil, err
	}
	return c, &ev, err
}

func always(c model.Character, ev model.Event) (model.Character, *model.Event, error) {
	return c, &ev, nil
}

func teenOnly(c model.Character) error {
	if c.Age < teen.MinDatingAge {
		return fmt.Errorf("%w: must be at least %d", model.ErrTooYoung, teen.MinDatingAge)
	}
	return nil
}

// InteractFamily talks to, compliments, insults or asks money from a family
// member. Only talking is possible from prison.
func (e *Engine) InteractFamily(ctx context.Context, memberID string, action family.Action) (Outcome, error) {
	return e.act(ctx, ActionFamilyInteract, action == family.ActionTalk, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(family.Interact(env, c, memberID, action))
	})
}

func (e *Engine) StartDating(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionStartDating, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(teen.StartDating(env, c))
	})
}

func (e *Engine) BreakUp(ctx context.Context, relationshipID string) (Outcome, error) {
	return e.act(ctx, ActionBreakUp, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(teen.BreakUp(env, c, relationshipID))
	})
}

func (e *Engine) Cheat(ctx context.Context, relationshipID string) (Outcome, error) {
	return e.act(ctx, ActionCheat, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(teen.Cheat(env, c, relationshipID))
	})
}

func (e *Engine) GiveGift(ctx context.Context, relationshipID string) (Outcome, error) {
	return e.act(ctx, ActionGift, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(teen.GiveGift(env, c, relationshipID))
	})
}

// Flirt applies a flirt whose success and relationship deltas were decided
// by the caller.
func (e *Engine) Flirt(ctx context.Context, relationshipID, line string, success bool, delta model.RelationshipStats) (Outcome, error) {
	return e.act(ctx, ActionFlirt, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(teen.Flirt(env, c, relationshipID, line, success, delta))
	})
}

func (e *Engine) FirstJob(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionFirstJob, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		if err := teenOnly(c); err != nil {
			return c, nil, err
		}
		return event(teen.GetFirstJob(env, c))
	})
}

func (e *Engine) TeenCrime(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionTeenCrime, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		if err := teenOnly(c); err != nil {
			return c, nil, err
		}
		return always(teen.CommitCrime(env, c))
	})
}

func (e *Engine) TryDrugs(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionDrugs, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		if err := teenOnly(c); err != nil {
			return c, nil, err
		}
		return always(teen.TryDrugs(env, c))
	})
}

func (e *Engine) SneakOut(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionSneakOut, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		if err := teenOnly(c); err != nil {
			return c, nil, err
		}
		return always(teen.SneakOut(env, c))
	})
}

// ApplyJob applies for a catalogue job. A rejection is logged as an event
// and is not an error.
func (e *Engine) ApplyJob(ctx context.Context, jobID string) (Outcome, error) {
	return e.act(ctx, ActionApplyJob, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		next, ev, hired, err := career.Apply(env, c, jobID)
		if err != nil {
			return c, nil, err
		}
		if !hired {
			return c, &ev, errTurnedDown
		}
		return next, &ev, nil
	})
}

func (e *Engine) Work(ctx context.Context, action career.WorkAction) (Outcome, error) {
	return e.act(ctx, ActionWork, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(career.Work(env, c, action))
	})
}

func (e *Engine) Enroll(ctx context.Context, major string) (Outcome, error) {
	return e.act(ctx, ActionEnroll, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(career.Enroll(env, c, major))
	})
}

// BuyAsset buys a catalogue asset. Not affording it logs a "Purchase Failed"
// event and returns ErrInsufficientFunds.
func (e *Engine) BuyAsset(ctx context.Context, templateID string) (Outcome, error) {
	return e.act(ctx, ActionBuyAsset, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(assets.Purchase(env, c, templateID))
	})
}

func (e *Engine) SellAsset(ctx context.Context, assetID string) (Outcome, error) {
	return e.act(ctx, ActionSellAsset, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(assets.Sell(env, c, assetID))
	})
}

// HaveChild adds a child. An empty partner name falls back to the active
// partner, if any.
func (e *Engine) HaveChild(ctx context.Context, partner string) (Outcome, error) {
	return e.act(ctx, ActionHaveChild, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		if partner == "" {
			if r, ok := c.ActiveRelationship(); ok {
				partner = r.Name
			}
		}
		return event(children.Have(env, c, partner))
	})
}

func (e *Engine) InteractChild(ctx context.Context, childID string, action children.Action) (Outcome, error) {
	return e.act(ctx, ActionChildInteract, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(children.Interact(env, c, childID, action))
	})
}

func (e *Engine) CommitCrime(ctx context.Context, crimeID string) (Outcome, error) {
	return e.act(ctx, ActionCommitCrime, false, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(crime.Commit(env, c, crimeID))
	})
}

func (e *Engine) Escape(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionEscape, true, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(crime.Escape(env, c))
	})
}

// Bribe pays a guard. Not affording the bribe logs "Bribery Failed" and
// returns ErrInsufficientFunds.
func (e *Engine) Bribe(ctx context.Context) (Outcome, error) {
	return e.act(ctx, ActionBribe, true, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(crime.Bribe(env, c))
	})
}

func (e *Engine) VisitHospital(ctx context.Context, kind health.VisitKind) (Outcome, error) {
	return e.act(ctx, ActionHospital, true, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(health.Visit(env, c, kind))
	})
}

func (e *Engine) TreatDisease(ctx context.Context, diseaseID string) (Outcome, error) {
	return e.act(ctx, ActionTreatDisease, true, func(env sim.Env, c model.Character) (model.Character, *model.Event, error) {
		return event(health.Treat(env, c, diseaseID))
	})
}
