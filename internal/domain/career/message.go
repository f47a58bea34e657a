package career

import (
	"fmt"
	"math/rand/v2"
)

const ConfidenceScore = "85%"

var encouragementTemplates = []string{
	"Great choice! Your skills in %s align perfectly with this career path.",
	"Excellent foundation! %s skills are highly valued in this field.",
	"You're on the right track! %s will give you a competitive edge.",
	"Perfect match! Companies are actively looking for professionals with %s skills.",
}

// Encouragement picks one template at random per call.
func Encouragement(skills string) string {
	return fmt.Sprintf(encouragementTemplates[rand.IntN(len(encouragementTemplates))], skills)
}

// Encouragements returns every message Encouragement can produce for skills.
func Encouragements(skills string) []string {
	out := make([]string, 0, len(encouragementTemplates))
	for _, t := range encouragementTemplates {
		out = append(out, fmt.Sprintf(t, skills))
	}
	return out
}
