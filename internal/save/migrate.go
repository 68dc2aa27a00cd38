package save

import (
	"time"
)

// migration upgrades a decoded document by one schema version in place.
type migration func(doc map[string]any)

// migrations[i] upgrades version i to i+1.
var migrations = []migration{
	v0ToV1,
	v1ToV2,
	v2ToV3,
}

// Migrate runs every migration from version up to CurrentVersion.
func Migrate(doc map[string]any, version int) map[string]any {
	for v := version; v < CurrentVersion; v++ {
		migrations[v](doc)
	}
	doc["schemaVersion"] = float64(CurrentVersion)
	return doc
}

func object(parent map[string]any, key string) (map[string]any, bool) {
	m, ok := parent[key].(map[string]any)
	return m, ok
}

func list(parent map[string]any, key string) ([]any, bool) {
	l, ok := parent[key].([]any)
	return l, ok
}

func setDefault(m map[string]any, key string, value any) {
	if v, ok := m[key]; !ok || v == nil {
		m[key] = value
	}
}

func character(doc map[string]any) (map[string]any, bool) {
	return object(doc, "character")
}

// v0ToV1 fills the collections added after the first release and moves
// ownedAssets under finances.
func v0ToV1(doc map[string]any) {
	c, ok := character(doc)
	if !ok {
		return
	}
	for _, key := range []string{"children", "relationships", "diseases", "achievements", "criminalRecord", "prisonRecord"} {
		setDefault(c, key, []any{})
	}
	setDefault(c, "will", map[string]any{
		"beneficiaries":    []any{},
		"charityDonations": []any{},
		"lastUpdated":      float64(0),
	})
	setDefault(c, "legacyScore", float64(0))
	setDefault(c, "isInPrison", false)
	setDefault(c, "criminalStatus", map[string]any{
		"wantedLevel":          float64(0),
		"activeWarrants":       []any{},
		"totalCrimesCommitted": float64(0),
		"timesSentenced":       float64(0),
		"totalJailTime":        float64(0),
		"isOnTrial":            false,
		"hasLawyer":            false,
		"lawyerQuality":        "public_defender",
	})

	setDefault(c, "finances", map[string]any{})
	fin, ok := object(c, "finances")
	if !ok {
		fin = map[string]any{}
		c["finances"] = fin
	}
	setDefault(fin, "monthlyExpenses", float64(200))
	setDefault(fin, "assets", []any{})
	if owned, ok := list(c, "ownedAssets"); ok {
		assets, _ := list(fin, "assets")
		fin["assets"] = append(assets, owned...)
	}
	delete(c, "ownedAssets")
}

// v1ToV2 upgrades the flat stat block and string family members.
func v1ToV2(doc map[string]any) {
	c, ok := character(doc)
	if !ok {
		return
	}
	setDefault(c, "stats", map[string]any{})
	stats, ok := object(c, "stats")
	if !ok {
		stats = map[string]any{}
		c["stats"] = stats
	}
	health, ok := stats["health"].(float64)
	if !ok {
		health = 100
		stats["health"] = health
	}
	setDefault(stats, "physicalHealth", health)
	setDefault(stats, "mentalHealth", health)
	setDefault(stats, "addictions", float64(0))
	setDefault(stats, "reputation", float64(50))
	if money, ok := c["money"]; ok {
		if _, has := stats["money"]; !has {
			stats["money"] = money
		}
		delete(c, "money")
	}
	setDefault(stats, "money", float64(0))

	age, _ := c["age"].(float64)
	setDefault(c, "family", map[string]any{})
	fam, ok := object(c, "family")
	if !ok {
		return
	}
	if name, ok := fam["mother"].(string); ok {
		fam["mother"] = legacyMember("mother", name, "mother", age+25)
	}
	if name, ok := fam["father"].(string); ok {
		fam["father"] = legacyMember("father", name, "father", age+25)
	}
	sibs, _ := list(fam, "siblings")
	for i, s := range sibs {
		if name, ok := s.(string); ok {
			sibs[i] = legacyMember("sibling-"+name, name, "sibling", age)
		}
	}
	if sibs == nil {
		sibs = []any{}
	}
	fam["siblings"] = sibs
}

func legacyMember(id, name, relation string, age float64) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        name,
		"relation":    relation,
		"age":         age,
		"closeness":   float64(50),
		"isAlive":     true,
		"personality": "loving",
	}
}

// v2ToV3 closes the event enums, defaults the pregnancy setting and drops
// timestamps that do not parse.
func v2ToV3(doc map[string]any) {
	events, _ := list(doc, "events")
	for _, e := range events {
		ev, ok := e.(map[string]any)
		if !ok {
			continue
		}
		setDefault(ev, "category", "general")
		setDefault(ev, "type", "neutral")
		setDefault(ev, "statChanges", map[string]any{})
		dropBadTime(ev, "timestamp")
	}
	if events == nil {
		doc["events"] = []any{}
	}

	setDefault(doc, "settings", map[string]any{})
	if s, ok := object(doc, "settings"); ok {
		setDefault(s, "pregnancyEnabled", false)
		setDefault(s, "autoSave", true)
		setDefault(s, "notifications", true)
	}
	setDefault(doc, "currentTab", "stats")

	c, ok := character(doc)
	if !ok {
		return
	}
	dropBadTime(c, "createdAt")
	achievements, _ := list(c, "achievements")
	for _, a := range achievements {
		if m, ok := a.(map[string]any); ok {
			dropBadTime(m, "unlockedAt")
		}
	}
	// An inmate saved without a release age keeps a nil release age; the
	// next tick frees them.
}

func dropBadTime(m map[string]any, key string) {
	s, ok := m[key].(string)
	if !ok {
		if _, present := m[key]; present && m[key] != nil {
			delete(m, key)
		}
		return
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
		delete(m, key)
	}
}
