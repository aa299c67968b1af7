package catalogue

// Category groups the selectable intake symptoms the way the form presents them.
type Category struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Symptoms []string `json:"symptoms"`
}

var taxonomy = []Category{
	{Key: "urgent", Title: "Urgent", Symptoms: []string{
		"Chest Pain", "Difficulty Breathing", "Severe Bleeding",
		"Sudden Weakness", "Suicidal Thoughts", "Seizure",
		"Severe Head Injury", "Paralysis/Numbness",
	}},
	{Key: "neuro", Title: "Neurological", Symptoms: []string{
		"Headache", "Dizziness", "Confusion", "Memory Problems",
		"Anxiety", "Depression", "Sleep Issues", "Vision Problems",
		"Hearing Loss", "Tremors", "Fainting",
	}},
	{Key: "cardio", Title: "Cardiovascular", Symptoms: []string{
		"Heart Palpitations", "Shortness of Breath", "Chest Tightness",
		"Swollen Ankles", "High Blood Pressure", "Irregular Heartbeat",
		"Cold Extremities",
	}},
	{Key: "digestive", Title: "Digestive", Symptoms: []string{
		"Nausea", "Vomiting", "Diarrhea", "Constipation",
		"Stomach Pain", "Heartburn", "Appetite Loss",
		"Weight Changes", "Bloating", "Blood in Stool",
	}},
	{Key: "skin", Title: "Skin", Symptoms: []string{
		"Skin Rash", "Itching", "Redness", "Swelling",
		"Acne/Pimples", "Dry Skin", "Hair Loss", "Nail Changes",
		"Blisters", "Skin Discoloration",
	}},
	{Key: "muscle", Title: "Musculoskeletal", Symptoms: []string{
		"Muscle Pain", "Joint Pain", "Back Pain", "Neck Pain",
		"Stiffness", "Swelling Joints", "Limited Movement",
		"Muscle Weakness",
	}},
	{Key: "common", Title: "Common", Symptoms: []string{
		"Fever", "Chills", "Cough", "Cold", "Sore Throat",
		"Runny Nose", "Fatigue/Tiredness", "Allergies",
		"Urinary Issues", "Ear Pain", "Eye Problems",
		"Sneezing", "Body Aches",
	}},
}

// Taxonomy returns the intake categories in form order.
func Taxonomy() []Category {
	out := make([]Category, len(taxonomy))
	for i, c := range taxonomy {
		out[i] = Category{Key: c.Key, Title: c.Title, Symptoms: append([]string(nil), c.Symptoms...)}
	}
	return out
}

// CategoryKeys returns the category keys in form order.
func CategoryKeys() []string {
	keys := make([]string, len(taxonomy))
	for i, c := range taxonomy {
		keys[i] = c.Key
	}
	return keys
}
