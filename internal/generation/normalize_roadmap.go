package generation

import "strconv"

// Fixed estimated-hour fallbacks. Milestones and stages deliberately differ.
const (
	milestoneFallbackHours = 10
	stageFallbackHours     = 20
)

// NormalizeMilestones maps an extracted payload into simple-roadmap
// milestones. Identifiers are assigned sequentially when absent and
// completed is forced false regardless of what the model returned.
func NormalizeMilestones(payload any) ([]RoadmapMilestone, error) {
	const op = "generation.NormalizeMilestones"

	items, ok := asArray(payload)
	if !ok {
		return nil, NewError(CodeValidation, op, "expected an array of milestones", nil)
	}
	out := make([]RoadmapMilestone, 0, len(items))
	for _, it := range items {
		m, ok := asObject(it)
		if !ok {
			continue
		}
		title := firstString(m, "title")
		if title == "" {
			continue
		}
		id := firstString(m, "id")
		if id == "" {
			id = strconv.Itoa(len(out) + 1)
		}
		out = append(out, RoadmapMilestone{
			ID:             id,
			Title:          title,
			Description:    firstString(m, "description"),
			Difficulty:     coerceDifficulty(m["difficulty"]),
			EstimatedHours: floatFromAny(m["estimatedHours"], milestoneFallbackHours),
			Completed:      false,
		})
	}
	if len(out) == 0 {
		return nil, NewError(CodeValidation, op, "no valid milestones in payload", nil)
	}
	return out, nil
}

// NormalizeDetailedRoadmap maps an extracted payload into the staged roadmap
// shape. Stage arrays (topics, exercises, projects, resources) default to
// empty rather than failing the stage.
func NormalizeDetailedRoadmap(payload any) (*DetailedRoadmap, error) {
	const op = "generation.NormalizeDetailedRoadmap"

	m, ok := asObject(payload)
	if !ok {
		return nil, NewError(CodeValidation, op, "expected a roadmap object", nil)
	}
	rawStages, _ := asArray(m["stages"])
	stages := make([]RoadmapStage, 0, len(rawStages))
	for _, it := range rawStages {
		sm, ok := asObject(it)
		if !ok {
			continue
		}
		title := firstString(sm, "title")
		if title == "" {
			continue
		}
		id := firstString(sm, "id")
		if id == "" {
			id = strconv.Itoa(len(stages) + 1)
		}
		stages = append(stages, RoadmapStage{
			ID:             id,
			Title:          title,
			Description:    firstString(sm, "description"),
			Difficulty:     coerceDifficulty(sm["difficulty"]),
			EstimatedHours: floatFromAny(sm["estimatedHours"], stageFallbackHours),
			Completed:      false,
			Topics:         toStringSlice(sm["topics"]),
			Exercises:      toStringSlice(sm["exercises"]),
			Projects:       toStringSlice(sm["projects"]),
			Resources:      toStringSlice(sm["resources"]),
		})
	}
	if len(stages) == 0 {
		return nil, NewError(CodeValidation, op, "no valid stages in payload", nil)
	}
	return &DetailedRoadmap{
		Title:        firstString(m, "title"),
		UserSummary:  firstString(m, "userSummary"),
		Stages:       stages,
		FinalProject: firstString(m, "finalProject"),
		ResourceList: toStringSlice(m["resourceList"]),
	}, nil
}
