package catalogue

import "strings"

const maxFollowUps = 3

var followUpQuestions = map[string][]string{
	"fever": {
		"How high is your temperature?",
		"How long have you had the fever?",
		"Do you have any other symptoms with the fever?",
	},
	"headache": {
		"Where is the pain located?",
		"Is the pain constant or comes and goes?",
		"Does light or sound make it worse?",
	},
	"cough": {
		"Is it a dry cough or productive?",
		"What color is the mucus?",
		"Does it get worse at night?",
	},
	"pain": {
		"On a scale of 1-10, how severe is the pain?",
		"What makes the pain better or worse?",
		"When did the pain start?",
	},
	"fatigue": {
		"How many hours are you sleeping?",
		"Does rest make you feel better?",
		"Has your appetite changed?",
	},
	"nausea": {
		"Are you actually vomiting?",
		"What foods make it worse?",
		"Can you keep fluids down?",
	},
}

// FollowUpQuestions returns up to three de-duplicated questions for the
// condition's symptoms, in symptom order. Unknown ids yield nil.
func (c *Catalogue) FollowUpQuestions(id string) []string {
	cond, ok := c.Lookup(id)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, s := range cond.Symptoms {
		key := strings.NewReplacer(" ", "_", "/", "_").Replace(strings.ToLower(s))
		for _, q := range followUpQuestions[key] {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
			if len(out) == maxFollowUps {
				return out
			}
		}
	}
	return out
}
