package catalogue

// defaultConditions is ordered; matcher ties resolve to the earlier entry.
var defaultConditions = []Condition{
	{
		ID:       "common_cold",
		Name:     "Common Cold",
		Symptoms: []string{"Runny Nose", "Sneezing", "Cough", "Sore Throat", "Congestion"},
		Advice:   "Rest, drink plenty of fluids, and use over-the-counter cold remedies. Most colds resolve within 7-10 days.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "💊 Take OTC cold medicine • 💧 Stay hydrated • 🛌 Get plenty of rest • 🍯 Honey for cough",
	},
	{
		ID:       "flu",
		Name:     "Influenza (Flu)",
		Symptoms: []string{"Fever", "Body Aches", "Chills", "Fatigue", "Cough", "Headache"},
		Advice:   "Rest, hydrate, and consider antiviral medications if seen early. Stay home to avoid spreading. Seek care if breathing difficulties occur.",
		Urgency:  "Moderate - See doctor if severe",
		Remedy:   "🛌 Rest • 💧 Hydrate • 💊 Take fever reducers • 🌡️ Monitor temperature",
	},
	{
		ID:       "covid",
		Name:     "COVID-19",
		Symptoms: []string{"Fever", "Cough", "Loss of Smell/Taste", "Shortness of Breath"},
		Advice:   "Isolate immediately, get tested, and monitor symptoms. Seek emergency care for breathing difficulties. Follow local health guidelines.",
		Urgency:  "Moderate - Test and isolate",
		Remedy:   "🏠 Isolate immediately • 🧪 Get tested • 🌡️ Monitor symptoms • 🚑 Seek ER for breathing issues",
	},
	{
		ID:       "migraine",
		Name:     "Migraine",
		Symptoms: []string{"Headache", "Sensitivity to Light", "Nausea", "Visual Disturbances"},
		Advice:   "Rest in a dark, quiet room. Use prescribed migraine medications. Avoid triggers like bright lights and strong smells.",
		Urgency:  "Moderate - See doctor if frequent",
		Remedy:   "🌑 Rest in dark room • 💊 Take pain medication • 🧊 Cold compress on forehead • 🚫 Avoid triggers",
	},
	{
		ID:       "anxiety",
		Name:     "Anxiety Attack",
		Symptoms: []string{"Nervousness", "Rapid Heartbeat", "Sweating", "Trembling"},
		Advice:   "Practice deep breathing, mindfulness, and grounding techniques. Reduce caffeine intake. Seek therapy if persistent.",
		Urgency:  "Low - Emergency if severe",
		Remedy:   "🌬️ Deep breathing • 👣 Grounding techniques • 💧 Drink water • 📞 Call support person",
	},
	{
		ID:       "stomach_flu",
		Name:     "Gastroenteritis (Stomach Flu)",
		Symptoms: []string{"Nausea", "Vomiting", "Diarrhea", "Stomach Cramps"},
		Advice:   "Stay hydrated with clear fluids, follow BRAT diet (bananas, rice, applesauce, toast). Avoid dairy and fatty foods.",
		Urgency:  "Low - ER if severe dehydration",
		Remedy:   "💧 Sip clear fluids • 🍌 BRAT diet • 🛌 Rest • 🚫 Avoid dairy/fatty foods",
	},
	{
		ID:       "uti",
		Name:     "Urinary Tract Infection",
		Symptoms: []string{"Frequent Urination", "Burning Sensation", "Pelvic Pain"},
		Advice:   "Drink plenty of water, avoid irritants like caffeine. See doctor for antibiotics if symptoms persist.",
		Urgency:  "Moderate - See doctor within 24-48 hours",
		Remedy:   "💧 Drink water • 🚫 Avoid caffeine • 💊 Use OTC UTI pain relief • 🏥 Schedule doctor visit",
	},
	{
		ID:       "allergies",
		Name:     "Seasonal Allergies",
		Symptoms: []string{"Sneezing", "Itchy Eyes", "Runny Nose", "Congestion"},
		Advice:   "Use antihistamines, nasal sprays, and avoid allergen exposure. Keep windows closed during high pollen days.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "💊 Take antihistamine • 🚪 Keep windows closed • 🕶️ Wear sunglasses outside • 🧼 Shower after being outdoors",
	},
	{
		ID:       "acne",
		Name:     "Acne or Skin Breakout",
		Symptoms: []string{"Pimples", "Oily Skin", "Skin Inflammation"},
		Advice:   "Gently cleanse twice daily, avoid picking or squeezing pimples. Use non-comedogenic products and consider over-the-counter treatments with benzoyl peroxide or salicylic acid.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "🧼 Gentle cleansing twice daily • 🚫 Avoid picking pimples • 💊 Use benzoyl peroxide spot treatment • 🧴 Non-comedogenic moisturizer",
	},
	{
		ID:       "sunburn",
		Name:     "Sunburn",
		Symptoms: []string{"Redness", "Skin Pain", "Swelling", "Blisters"},
		Advice:   "Apply cool compresses, use aloe vera gel, stay hydrated, and take over-the-counter pain relievers if needed. Avoid further sun exposure and see doctor for severe burns with blisters.",
		Urgency:  "Low - Self-care unless severe",
		Remedy:   "🌿 Apply aloe vera gel • 🧊 Cool compresses • 💧 Stay hydrated • 💊 Take ibuprofen for pain",
	},
	{
		ID:       "fungal_infection",
		Name:     "Fungal Skin Infection",
		Symptoms: []string{"Itching", "Redness", "Flaking"},
		Advice:   "Keep area clean and dry, use over-the-counter antifungal cream, and wear breathable clothing. See doctor if no improvement after 2 weeks.",
		Urgency:  "Low - Try OTC antifungal first",
		Remedy:   "💊 Apply antifungal cream • 🧼 Keep area clean and dry • 👕 Wear breathable clothing • 🚫 Don't share towels",
	},
	{
		ID:       "asthma_attack",
		Name:     "Asthma Attack",
		Symptoms: []string{"Shortness of Breath", "Wheezing", "Chest Tightness", "Cough"},
		Advice:   "Use rescue inhaler immediately. Sit upright and try to stay calm. Seek emergency care if breathing doesn't improve.",
		Urgency:  "High - Emergency if severe",
		Remedy:   "💨 Use rescue inhaler • 🪑 Sit upright • 🌬️ Practice slow breathing • 🚑 Call emergency if worsening",
	},
	{
		ID:       "tension_headache",
		Name:     "Tension Headache",
		Symptoms: []string{"Headache", "Neck Pain", "Stress", "Muscle Tension"},
		Advice:   "Practice stress management, improve posture, apply heat to neck and shoulders. Over-the-counter pain relievers may help.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "💊 Take OTC pain reliever • 🔥 Apply heat to neck • 🧘 Practice relaxation • 💆 Gentle massage",
	},
	{
		ID:       "bronchitis",
		Name:     "Acute Bronchitis",
		Symptoms: []string{"Cough", "Shortness of Breath", "Fatigue", "Chest Discomfort"},
		Advice:   "Rest, stay hydrated, use cough suppressants if needed. Most cases resolve in 1-3 weeks. See doctor if symptoms worsen.",
		Urgency:  "Low - See doctor if persistent",
		Remedy:   "🛌 Rest • 💧 Drink warm fluids • 💊 Use cough medicine • 🌬️ Use humidifier",
	},
	{
		ID:       "conjunctivitis",
		Name:     "Pink Eye (Conjunctivitis)",
		Symptoms: []string{"Eye Problems", "Redness", "Itching", "Discharge"},
		Advice:   "Practice good hygiene, avoid touching eyes, use warm compresses. See doctor for antibiotic drops if bacterial.",
		Urgency:  "Low - See doctor for diagnosis",
		Remedy:   "👁️ Avoid touching eyes • 🧼 Wash hands frequently • 🧻 Use clean towels • 🔥 Warm compresses",
	},
	{
		ID:       "sinusitis",
		Name:     "Sinus Infection",
		Symptoms: []string{"Headache", "Congestion", "Facial Pain", "Runny Nose"},
		Advice:   "Use saline nasal spray, apply warm compresses, stay hydrated. See doctor if symptoms last more than 10 days.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "💧 Saline nasal spray • 🔥 Warm facial compresses • 💧 Stay hydrated • 💊 Decongestants if needed",
	},
	{
		ID:       "anxiety_disorder",
		Name:     "Anxiety Disorder",
		Symptoms: []string{"Anxiety", "Nervousness", "Rapid Heartbeat", "Sweating", "Trembling", "Headache", "Dizziness"},
		Advice:   "Practice relaxation techniques like deep breathing, meditation, and mindfulness. Reduce caffeine intake, get regular exercise, and maintain a consistent sleep schedule. Consider speaking with a mental health professional for therapy or counseling.",
		Urgency:  "Moderate - Consult doctor if persistent",
		Remedy:   "🌬️ Practice deep breathing • 🧘 Try mindfulness meditation • 💧 Drink water • 📞 Call support person • 🚫 Reduce caffeine",
	},
	{
		ID:       "migraine_with_aura",
		Name:     "Migraine with Aura",
		Symptoms: []string{"Headache", "Visual Disturbances", "Dizziness", "Nausea", "Sensitivity to Light"},
		Advice:   "Rest in a dark, quiet room. Use prescribed migraine medications if available. Avoid triggers like bright lights, strong smells, and certain foods. Stay hydrated.",
		Urgency:  "Moderate - See doctor if frequent",
		Remedy:   "🌑 Rest in dark room • 💊 Take migraine medication • 🧊 Cold compress • 💧 Sip water • 🚫 Avoid triggers",
	},
	{
		ID:       "vertigo",
		Name:     "Vertigo or Balance Disorder",
		Symptoms: []string{"Dizziness", "Balance Problems", "Nausea", "Headache"},
		Advice:   "Move slowly and avoid sudden head movements. Sit or lie down when dizzy. Stay hydrated and consider vestibular exercises. See doctor if symptoms persist.",
		Urgency:  "Moderate - See doctor if severe",
		Remedy:   "🪑 Sit or lie down immediately • 🚶 Move slowly • 💧 Sip water • 👀 Focus on stationary object • 🚫 Avoid sudden movements",
	},
	{
		ID:       "stress_related",
		Name:     "Stress-Related Symptoms",
		Symptoms: []string{"Anxiety", "Headache", "Fatigue/Tiredness", "Sleep Issues", "Muscle Tension"},
		Advice:   "Practice stress management techniques like meditation, exercise, and proper sleep hygiene. Take regular breaks, maintain social connections, and consider counseling if stress becomes overwhelming.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "🧘 Practice deep breathing • 🏃 Light exercise • 💤 Improve sleep routine • 📝 Journal feelings • 👥 Talk to friends/family",
	},
	{
		ID:       "dehydration",
		Name:     "Dehydration",
		Symptoms: []string{"Dizziness", "Headache", "Fatigue/Tiredness", "Dry Skin"},
		Advice:   "Drink plenty of water and electrolyte-rich fluids. Avoid caffeine and alcohol. Rest in a cool environment and consume water-rich foods like fruits and vegetables.",
		Urgency:  "Low - Self-care recommended",
		Remedy:   "💧 Drink water immediately • 🍉 Eat water-rich fruits • 🚫 Avoid caffeine/alcohol • 🌡️ Rest in cool place • 🧂 Consider electrolyte drink",
	},
}
