package form

// ValidSample returns a record that satisfies every rule of the default
// questionnaire. It seeds `voiceintake fields --sample` and tests.
func ValidSample() Record {
	return Record{
		"businessName":      "Acme Dental",
		"website":           "https://acme-dental.example",
		"date":              "2026-10-17",
		"contactName":       "Jane Roe",
		"email":             "jane@acme-dental.example",
		"phone":             "+1 555 123 4567",
		"callVolume":        "500 - 2,000",
		"supportCoverage":   "Business hours only",
		"seasonalVolume":    "No",
		"callTypes":         []string{"Appointment scheduling", "Billing questions"},
		"aiLiveAgentMix":    "AI handles all calls first, escalates as needed",
		"liveAgentCalls":    []string{"Billing/payment issues"},
		"liveAgentProvider": "internal",
		"systemAccess":      "No",
		"knowledgeBase":     "Yes, it is up to date",
		"escalationAction":  "Transfer to a live agent",
		"languages":         "English and Spanish",
		"agentTone":         "Warm and empathetic",
		"compliance":        []string{"HIPAA"},
		"phoneSystem":       "RingCentral",
		"launchTimeline":    "Within 30 days",
		"additionalNotes":   "Front desk closes at 5pm on Fridays.",
	}
}
