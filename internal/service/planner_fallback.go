package service

import "strings"

// skillGapKeywords are narrative fragments that suggest a study or skill
// area needing dedicated time. Matching is case-insensitive substring
// containment, so "struggl" covers struggle/struggling/struggled.
var skillGapKeywords = []string{
	"study",
	"learn",
	"practice",
	"skill",
	"improve",
	"weak",
	"struggl",
	"review",
	"course",
	"tutorial",
}

// MentionsSkillGap reports whether the narrative references a deficient
// study or skill area. It decides whether the fallback schedule carves out
// focused study blocks.
func MentionsSkillGap(narrative string) bool {
	lowered := strings.ToLower(narrative)
	for _, kw := range skillGapKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// SynthesizeSchedule builds a deterministic full-day schedule from the
// preferences and keyword heuristics on the narrative. The result covers
// every hour in [WakeHour, SleepHour) exactly once, in ascending order.
func SynthesizeSchedule(narrative string, prefs PlanPreferences) []TimeSlot {
	var slots []TimeSlot
	hour := prefs.WakeHour

	slots = append(slots, TimeSlot{
		Hour:        hour,
		Activity:    "Morning Routine",
		Description: "Wake up, hygiene, breakfast and a short plan for the day",
		Priority:    "medium",
		Category:    "personal",
	})
	hour++

	// Focused study blocks, each followed by a break except after the
	// last, as long as there is room before the wind-down hours.
	if MentionsSkillGap(narrative) {
		for i := 0; i < prefs.FocusHours && hour < prefs.SleepHour-2; i++ {
			slots = append(slots, TimeSlot{
				Hour:        hour,
				Activity:    "Focused Study",
				Description: "Deep work on the skill area flagged in your reflection",
				Priority:    "high",
				Category:    "study",
			})
			hour++
			if i < prefs.FocusHours-1 && hour < prefs.SleepHour-2 {
				slots = append(slots, TimeSlot{
					Hour:        hour,
					Activity:    "Break",
					Description: "Step away from the desk, stretch, hydrate",
					Priority:    "medium",
					Category:    "break",
				})
				hour++
			}
		}
	}

	for ; hour < prefs.SleepHour; hour++ {
		switch {
		case hour == 12:
			slots = append(slots, TimeSlot{
				Hour:        hour,
				Activity:    "Lunch",
				Description: "Midday meal away from screens",
				Priority:    "medium",
				Category:    "meal",
			})
		case hour == 18:
			slots = append(slots, TimeSlot{
				Hour:        hour,
				Activity:    "Dinner",
				Description: "Evening meal",
				Priority:    "medium",
				Category:    "meal",
			})
		case hour > 20:
			slots = append(slots, TimeSlot{
				Hour:        hour,
				Activity:    "Evening Routine",
				Description: "Wind down, reflect on the day, prepare for sleep",
				Priority:    "low",
				Category:    "personal",
			})
		default:
			slots = append(slots, TimeSlot{
				Hour:        hour,
				Activity:    "Productive Work",
				Description: "Progress on current tasks and goals",
				Priority:    "medium",
				Category:    "work",
			})
		}
	}

	return slots
}
