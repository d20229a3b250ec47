package template

// DefaultTemplate is the embedded review summary template.
// It uses {{variable}} placeholders for dynamic content injection.
const DefaultTemplate = `# Intake Summary
**{{business}}** | Contact: {{contact}} ({{email}})

{{answers}}

## Additional Notes
{{notes}}

---
Sending to {{endpoint}}. A copy is emailed to the contact when the document is generated.
`
