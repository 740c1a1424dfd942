package utilization

import (
	"math"
	"sort"
	"strings"
	"time"

	"resource-manager/internal/entities"
)

// ProjectProgress returns the staffed share of a project's team size, capped at 100.
func ProjectProgress(project entities.Project, assignments []entities.Assignment) float64 {
	if project.TeamSize <= 0 {
		return 0
	}
	assigned := 0
	for i := range assignments {
		if assignments[i].Project.ID == project.ID {
			assigned++
		}
	}
	return math.Min(float64(assigned)/float64(project.TeamSize)*100, 100)
}

// SkillCoverage returns the share of the project's required skills held by at least
// one assigned engineer. A project without required skills is fully covered.
func SkillCoverage(project entities.Project, assignments []entities.Assignment) float64 {
	if len(project.RequiredSkills) == 0 {
		return 100
	}
	held := make(map[string]struct{})
	for i := range assignments {
		if assignments[i].Project.ID != project.ID {
			continue
		}
		for _, s := range assignments[i].Engineer.Skills {
			held[normalizeSkill(s)] = struct{}{}
		}
	}
	covered := 0
	for _, s := range project.RequiredSkills {
		if _, ok := held[normalizeSkill(s)]; ok {
			covered++
		}
	}
	return float64(covered) / float64(len(project.RequiredSkills)) * 100
}

// TimelineProgress returns how much of the project's date range has elapsed at now, 0..100.
func TimelineProgress(project entities.Project, now time.Time) float64 {
	start, end := day(project.StartDate), day(project.EndDate)
	if !end.After(start) {
		return 0
	}
	cur := day(now)
	switch {
	case !cur.After(start):
		return 0
	case !cur.Before(end):
		return 100
	}
	return float64(cur.Sub(start)) / float64(end.Sub(start)) * 100
}

// Projects builds per-project analytics in project order.
func Projects(projects []entities.Project, assignments []entities.Assignment, now time.Time) []entities.ProjectAnalytics {
	res := make([]entities.ProjectAnalytics, 0, len(projects))
	for _, p := range projects {
		assigned := make(map[string]struct{})
		for i := range assignments {
			if assignments[i].Project.ID == p.ID {
				assigned[assignments[i].Engineer.ID] = struct{}{}
			}
		}
		res = append(res, entities.ProjectAnalytics{
			ProjectID:         p.ID,
			ProjectName:       p.Name,
			Status:            string(p.Status),
			TeamSize:          p.TeamSize,
			AssignedEngineers: len(assigned),
			StaffingProgress:  ProjectProgress(p, assignments),
			SkillCoverage:     SkillCoverage(p, assignments),
			TimelineProgress:  TimelineProgress(p, now),
		})
	}
	return res
}

// Timeline lays assignments out as calendar events.
func Timeline(assignments []entities.Assignment) []entities.TimelineEvent {
	res := make([]entities.TimelineEvent, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		res = append(res, entities.TimelineEvent{
			ID:                   a.ID,
			Title:                a.Engineer.Name + " - " + a.Project.Name,
			Start:                a.StartDate,
			End:                  a.EndDate,
			EngineerName:         a.Engineer.Name,
			ProjectName:          a.Project.Name,
			AllocationPercentage: a.AllocationPercentage,
			Level:                Level(float64(a.AllocationPercentage)),
		})
	}
	return res
}

// Team summarizes utilization over all engineers, including those without assignments.
func Team(engineers []entities.Engineer, assignments []entities.Assignment) entities.TeamSummary {
	res := entities.TeamSummary{Engineers: len(engineers)}
	if len(engineers) == 0 {
		return res
	}

	var ratio float64
	for _, e := range engineers {
		total := Allocated(e.ID, assignments, "")
		if total > e.Capacity() {
			res.Overallocated++
		}
		ratio += float64(total) / float64(e.Capacity())
	}
	res.AverageUtilization = int(math.Round(ratio / float64(len(engineers)) * 100))
	return res
}

// Suitable returns engineers holding at least one of the required skills, best
// match first. Engineers with equal match counts keep their input order.
func Suitable(engineers []entities.Engineer, required []string) []entities.Engineer {
	want := make(map[string]struct{}, len(required))
	for _, s := range required {
		if n := normalizeSkill(s); n != "" {
			want[n] = struct{}{}
		}
	}

	type match struct {
		engineer entities.Engineer
		score    int
	}
	matches := make([]match, 0)
	for _, e := range engineers {
		score := 0
		seen := make(map[string]struct{}, len(e.Skills))
		for _, s := range e.Skills {
			n := normalizeSkill(s)
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			if _, ok := want[n]; ok {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, match{engineer: e, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	res := make([]entities.Engineer, 0, len(matches))
	for _, m := range matches {
		res = append(res, m.engineer)
	}
	return res
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
