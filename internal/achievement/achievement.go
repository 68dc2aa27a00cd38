// Package achievement unlocks one-off achievements from the character and
// the event log.
package achievement

import (
	"strings"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

// Rule is one achievement and the predicate that unlocks it.
type Rule struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Check       func(c model.Character, events []model.Event) bool
}

func countTitle(events []model.Event, title string) int {
	n := 0
	for _, e := range events {
		if e.Title == title {
			n++
		}
	}
	return n
}

var Rules = []Rule{
	{
		ID:          "troublemaker",
		Title:       "Troublemaker",
		Description: "Got grounded 3 times in a row",
		Icon:        "😈",
		Check: func(_ model.Character, events []model.Event) bool {
			return countTitle(events, "Got Grounded") >= 3
		},
	},
	{
		ID:          "honor_student",
		Title:       "Honor Student",
		Description: "Made honor roll 5 times",
		Icon:        "🎓",
		Check: func(_ model.Character, events []model.Event) bool {
			return countTitle(events, "Made Honor Roll") >= 5
		},
	},
	{
		ID:          "family_favorite",
		Title:       "Family Favorite",
		Description: "Maintain 90+ closeness with all family members",
		Icon:        "👨‍👩‍👧‍👦",
		Check: func(c model.Character, _ []model.Event) bool {
			for _, m := range c.FamilyMembers() {
				if m.Closeness < 90 {
					return false
				}
			}
			return true
		},
	},
	{
		ID:          "rebel",
		Title:       "Rebel",
		Description: "Skipped class 10 times",
		Icon:        "🚫",
		Check: func(_ model.Character, events []model.Event) bool {
			return countTitle(events, "Skipped Class") >= 10
		},
	},
	{
		ID:          "social_butterfly",
		Title:       "Social Butterfly",
		Description: "Made new friends 15 times",
		Icon:        "🦋",
		Check: func(_ model.Character, events []model.Event) bool {
			return countTitle(events, "Made New Friends") >= 15
		},
	},
	{
		ID:          "survivor",
		Title:       "Survivor",
		Description: "Lived to age 80",
		Icon:        "🏆",
		Check: func(c model.Character, _ []model.Event) bool {
			return c.Age >= 80 && c.IsAlive
		},
	},
	{
		ID:          "genius",
		Title:       "Genius",
		Description: "Maintain 95+ smarts for 10 years",
		Icon:        "🧠",
		// TODO: track consecutive years instead of the current snapshot.
		Check: func(c model.Character, _ []model.Event) bool {
			return c.Stats.Smarts >= 95 && c.Age >= 10
		},
	},
	{
		ID:          "money_bags",
		Title:       "Money Bags",
		Description: "Successfully asked family for money 20 times",
		Icon:        "💰",
		Check: func(_ model.Character, events []model.Event) bool {
			n := 0
			for _, e := range events {
				if e.Type == model.EventPositive && strings.HasPrefix(e.Title, "Asked ") && strings.HasSuffix(e.Title, " for Money") {
					n++
				}
			}
			return n >= 20
		},
	},
}

// Evaluate unlocks every rule that now holds and was not unlocked before.
// Each unlock is recorded on the character and reported as its own event.
func Evaluate(env sim.Env, c model.Character, events []model.Event) (model.Character, []model.Event) {
	var unlocked []model.Event
	for _, r := range Rules {
		if c.HasAchievement(r.ID) || !r.Check(c, events) {
			continue
		}
		c = c.Clone()
		c.Achievements = append(c.Achievements, model.Achievement{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Icon:        r.Icon,
			UnlockedAt:  env.Now(),
		})
		unlocked = append(unlocked, env.Event(c.Age, "Achievement Unlocked: "+r.Title, r.Description,
			nil, model.EventPositive, model.CategoryAchievement))
	}
	return c, unlocked
}
