package api

import (
	"net/http"

	"lifepath/internal/assets"
	"lifepath/internal/career"
	"lifepath/internal/crime"
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type JobEntry struct {
	career.Job
	Available  bool    `json:"available"`
	HireChance float64 `json:"hireChance"`
	HasDegree  bool    `json:"hasDegree"`
}

type AssetEntry struct {
	assets.Template
	Available bool `json:"available"`
}

type CrimeEntry struct {
	crime.Action
	SuccessRate float64 `json:"successRate"`
}

type MajorEntry struct {
	career.Major
	Enrolled bool `json:"enrolled"`
}

// GET /api/catalog/{kind} lists jobs, assets, crimes or majors. With a
// living character the entries carry its eligibility and odds.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	c := e.State().Character
	policy := e.Env().Policy

	switch r.PathValue("kind") {
	case "jobs":
		writeJSON(w, http.StatusOK, jobCatalog(policy, c))
	case "assets":
		writeJSON(w, http.StatusOK, assetCatalog(c))
	case "crimes":
		writeJSON(w, http.StatusOK, crimeCatalog(policy, c))
	case "majors":
		writeJSON(w, http.StatusOK, majorCatalog(c))
	default:
		writeErr(w, http.StatusNotFound, "unknown catalog")
	}
}

func jobCatalog(p sim.Policy, c *model.Character) []JobEntry {
	out := make([]JobEntry, 0, len(career.Jobs))
	for _, j := range career.Jobs {
		entry := JobEntry{Job: j}
		if c != nil {
			entry.Available = career.Qualifies(*c, j)
			entry.HasDegree = career.HasDegreeFor(*c, j.ID)
			if entry.Available {
				entry.HireChance = career.HireChance(p, *c, j)
			}
		}
		out = append(out, entry)
	}
	return out
}

func assetCatalog(c *model.Character) []AssetEntry {
	out := make([]AssetEntry, 0, len(assets.Templates))
	for _, t := range assets.Templates {
		entry := AssetEntry{Template: t}
		if c != nil {
			entry.Available = assets.Eligible(*c, t)
		}
		out = append(out, entry)
	}
	return out
}

func crimeCatalog(p sim.Policy, c *model.Character) []CrimeEntry {
	out := make([]CrimeEntry, 0, len(crime.Actions))
	for _, a := range crime.Actions {
		entry := CrimeEntry{Action: a, SuccessRate: a.BaseSuccessRate}
		if c != nil {
			entry.SuccessRate = crime.SuccessRate(p, *c, a)
		}
		out = append(out, entry)
	}
	return out
}

func majorCatalog(c *model.Character) []MajorEntry {
	out := make([]MajorEntry, 0, len(career.Majors))
	for _, m := range career.Majors {
		entry := MajorEntry{Major: m}
		if c != nil {
			entry.Enrolled = c.College.IsEnrolled && c.College.Major == m.Name
		}
		out = append(out, entry)
	}
	return out
}
