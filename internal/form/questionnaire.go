package form

// DefaultSteps returns the AI voice agent setup questionnaire. The last step
// (additional notes) doubles as the final review screen.
func DefaultSteps() []Step {
	return []Step{
		{
			Title:       "Client Information",
			Description: "Tell us about your business and who we should contact.",
			Fields: []Field{
				{Key: "businessName", Label: "Business name", Kind: KindText, Required: true, Placeholder: "Acme Dental"},
				{Key: "website", Label: "Website", Kind: KindURL, Placeholder: "https://example.com"},
				{Key: "date", Label: "Date", Kind: KindDate, Placeholder: "YYYY-MM-DD"},
				{Key: "contactName", Label: "Contact name", Kind: KindText, Required: true},
				{Key: "email", Label: "Email", Kind: KindEmail, Required: true, Placeholder: "name@example.com"},
				{Key: "phone", Label: "Phone", Kind: KindPhone, Required: true, Placeholder: "+1 555 123 4567"},
			},
		},
		{
			Title:       "Call Volume & Hours",
			Description: "Help us size the deployment.",
			Fields: []Field{
				{Key: "callVolume", Label: "How many calls do you receive per month?", Kind: KindRadio, Required: true,
					Options: opts("Less than 500", "500 - 2,000", "2,000 - 10,000", "More than 10,000")},
				{Key: "supportCoverage", Label: "What support coverage do you need?", Kind: KindRadio, Required: true,
					Options: opts("Business hours only", "Extended hours", "24/7", OtherOption)},
				otherFor("supportCoverage", "otherSupportCoverage", "Please specify your support coverage"),
				{Key: "seasonalVolume", Label: "Does your call volume change seasonally?", Kind: KindRadio,
					Options: opts("Yes", "No", "Not sure")},
			},
		},
		{
			Title:       "Call Types & Categories",
			Description: "What are callers typically contacting you about?",
			Fields: []Field{
				{Key: "callTypes", Label: "Which call types should the agent handle?", Kind: KindCheckbox, Required: true,
					Options: opts("Customer support", "Sales inquiries", "Appointment scheduling", "Billing questions", "Order status", "Technical support", OtherOption)},
				otherFor("callTypes", "otherCallType", "Please specify other call types"),
				{Key: "callMix", Label: "Roughly how are calls split between these types?", Kind: KindTextArea,
					Placeholder: "e.g. 60% scheduling, 30% billing, 10% other"},
			},
		},
		{
			Title:       "AI vs. Live Agent Handling",
			Description: "Define how you want to balance AI and live agent interactions.",
			Fields: []Field{
				{Key: "aiLiveAgentMix", Label: "How would you like to use AI and live agents?", Kind: KindRadio, Required: true,
					Options: opts(
						"AI handles all calls first, escalates as needed",
						"AI handles simple calls only, live agents handle complex ones",
						"Live agents answer all calls",
						OtherOption,
					)},
				otherFor("aiLiveAgentMix", "otherAiLiveAgentMix", "Please specify your preferred AI/Live agent mix"),
				{Key: "liveAgentCalls", Label: "What calls should always be handled by a live agent?", Kind: KindCheckbox, Required: true,
					Options: opts(
						"Billing/payment issues",
						"Mental health or sensitive issues",
						"Technical problems",
						"Legal or compliance inquiries",
						"None - AI can attempt first",
						OtherOption,
					)},
				otherFor("liveAgentCalls", "otherLiveAgentCalls", "Please specify other types of calls for live agents"),
				{Key: "liveAgentProvider", Label: "If a live agent is required during the call, how would you like us to handle it?", Kind: KindRadio, Required: true,
					Options: []Option{
						{Value: "voicemedia", Label: "VoiceMedia should provide the live agents"},
						{Value: "internal", Label: "Your company provides the live agents and we transfer to your team"},
						{Value: "depends", Label: "It depends on the call type"},
					}},
			},
		},
		{
			Title:       "Knowledge Requirements",
			Description: "What does the agent need to know to answer callers?",
			Fields: []Field{
				{Key: "systemAccess", Label: "Will the agent need access to your internal systems?", Kind: KindRadio, Required: true,
					Options: opts("Yes", "No", "Not sure")},
				{Key: "knowledgeBase", Label: "Do you have a knowledge base or FAQ we can use?", Kind: KindRadio, Required: true,
					Options: opts("Yes, it is up to date", "Yes, but it needs work", "No")},
				{Key: "websiteFAQ", Label: "Link to your website FAQ (if any)", Kind: KindURL, Placeholder: "https://example.com/faq"},
			},
		},
		{
			Title:       "Call Flow & Escalation",
			Description: "What should happen when the AI cannot resolve a call?",
			Fields: []Field{
				{Key: "escalationAction", Label: "Preferred escalation action", Kind: KindRadio, Required: true,
					Options: opts("Transfer to a live agent", "Take a message", "Schedule a callback", "Create a support ticket", OtherOption)},
				otherFor("escalationAction", "otherEscalationAction", "Please specify the escalation action"),
				{Key: "specificTeams", Label: "Should calls route to specific teams or people?", Kind: KindTextArea,
					Placeholder: "e.g. billing questions go to the finance desk"},
			},
		},
		{
			Title:       "Languages & Tone",
			Description: "How should the agent sound?",
			Fields: []Field{
				{Key: "languages", Label: "Which languages should the agent support?", Kind: KindRadio, Required: true,
					Options: opts("English only", "English and Spanish", OtherOption)},
				otherFor("languages", "otherLanguages", "Please specify the languages"),
				{Key: "agentTone", Label: "What tone should the agent use?", Kind: KindRadio, Required: true,
					Options: opts("Professional", "Friendly and casual", "Warm and empathetic", OtherOption)},
				otherFor("agentTone", "otherTone", "Please describe the tone"),
				{Key: "aiVoicePreference", Label: "AI voice preference", Kind: KindRadio,
					Options: opts("Male", "Female", "No preference")},
			},
		},
		{
			Title:       "Security & Compliance",
			Description: "Which regulations apply to your calls?",
			Fields: []Field{
				{Key: "compliance", Label: "Compliance requirements", Kind: KindCheckbox, Required: true,
					Options: opts("HIPAA", "PCI-DSS", "GDPR", "SOC 2", "None")},
			},
		},
		{
			Title:       "Call Systems & Tech Stack",
			Description: "What will the agent integrate with?",
			Fields: []Field{
				{Key: "phoneSystem", Label: "Current phone system", Kind: KindRadio, Required: true,
					Options: opts("RingCentral", "Five9", "Twilio", "Genesys", "None", OtherOption)},
				otherFor("phoneSystem", "otherPhoneSystem", "Please specify your phone system"),
				{Key: "crm", Label: "CRM systems in use", Kind: KindCheckbox,
					Options: opts("Salesforce", "HubSpot", "Zendesk", "Zoho", "None", OtherOption)},
				otherFor("crm", "otherCRM", "Please specify your CRM"),
			},
		},
		{
			Title:       "Timeline & Launch",
			Description: "When do you want to go live?",
			Fields: []Field{
				{Key: "launchTimeline", Label: "Target launch timeline", Kind: KindRadio, Required: true,
					Options: opts("As soon as possible", "Within 30 days", "1 - 3 months", "3+ months")},
				{Key: "currentProvider", Label: "Current answering service or provider (if any)", Kind: KindText},
				{Key: "switchReason", Label: "Main reason for switching", Kind: KindRadio,
					Options: opts("Cost", "Better AI capabilities", "Poor service quality", "Need to scale", OtherOption)},
				otherFor("switchReason", "otherSwitchReason", "Please specify the reason"),
			},
		},
		{
			Title:       "Additional Notes",
			Description: "Add any extra information you'd like to include in your setup form.",
			Fields: []Field{
				{Key: "additionalNotes", Label: "Additional information", Kind: KindTextArea,
					Placeholder: "Anything else we should know?"},
			},
		},
	}
}

// DefaultCatalog returns the questionnaire as an immutable catalog.
func DefaultCatalog() *Catalog {
	return MustCatalog(DefaultSteps())
}
