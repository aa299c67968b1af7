package catalogue

var defaultWeights = map[string]float64{
	// critical
	"chest pain":           3.0,
	"difficulty breathing": 3.0,
	"severe bleeding":      3.0,
	"sudden weakness":      3.0,
	"suicidal thoughts":    3.0,
	"seizure":              3.0,
	"severe head injury":   3.0,
	"paralysis/numbness":   3.0,

	// neurological
	"headache":            1.5,
	"dizziness":           1.5,
	"confusion":           2.0,
	"memory problems":     1.5,
	"anxiety":             1.5,
	"nervousness":         1.5,
	"depression":          1.0,
	"sleep issues":        0.5,
	"vision problems":     2.0,
	"visual disturbances": 2.0,
	"hearing loss":        1.5,
	"tremors":             2.0,
	"fainting":            2.5,
	"balance problems":    1.5,

	// cardiovascular
	"heart palpitations":  2.0,
	"rapid heartbeat":     2.0,
	"shortness of breath": 2.5,
	"chest tightness":     2.5,
	"swollen ankles":      1.0,
	"high blood pressure": 1.5,
	"irregular heartbeat": 2.0,
	"cold extremities":    1.0,

	// digestive
	"nausea":         1.0,
	"vomiting":       1.5,
	"diarrhea":       1.0,
	"constipation":   0.5,
	"stomach pain":   1.5,
	"heartburn":      0.5,
	"appetite loss":  0.5,
	"weight changes": 1.0,
	"bloating":       0.5,
	"blood in stool": 2.5,
	"stomach cramps": 1.0,

	// dermatological
	"skin rash":          1.0,
	"itching":            0.5,
	"redness":            0.5,
	"swelling":           1.0,
	"acne/pimples":       0.5,
	"dry skin":           0.5,
	"hair loss":          0.5,
	"nail changes":       0.5,
	"blisters":           1.0,
	"skin discoloration": 1.0,
	"skin inflammation":  1.0,
	"skin pain":          1.0,
	"flaking":            0.5,

	// musculoskeletal
	"muscle pain":      1.0,
	"joint pain":       1.0,
	"back pain":        1.0,
	"neck pain":        1.0,
	"stiffness":        0.5,
	"swelling joints":  1.0,
	"limited movement": 1.0,
	"muscle weakness":  1.5,
	"muscle tension":   1.0,

	// general
	"fever":              2.0,
	"chills":             1.0,
	"cough":              1.0,
	"cold":               0.5,
	"sore throat":        1.0,
	"runny nose":         0.5,
	"fatigue/tiredness":  0.5,
	"allergies":          0.5,
	"urinary issues":     1.0,
	"ear pain":           1.0,
	"eye problems":       1.5,
	"sneezing":           0.5,
	"body aches":         1.0,
	"sweating":           1.0,
	"trembling":          1.0,
	"frequent urination": 1.0,
	"burning sensation":  1.5,
	"pelvic pain":        1.5,
	"itchy eyes":         0.5,
	"congestion":         0.5,
	"stress":             1.0,

	"loss of smell/taste":  2.0,
	"sensitivity to light": 1.0,
}
