package controllers

import (
	"bytes"
	"text/template"
)

const organizeThoughtTemplate = `The user is brain dumping their thoughts. Organize this into a clear, actionable plan:

Brain dump: {{.BrainDump}}

Provide:
1. A brief summary (1 sentence)
2. 3-5 clear action steps
3. One encouraging note

Keep it concise and actionable.`

const dailyBriefingTemplate = `Create a brief, motivating daily briefing for {{.Day}}.

Include:
1. A warm greeting
2. One focus intention for the day
3. A quick productivity tip
4. An encouraging note

Keep it brief, warm, and actionable (3-4 sentences).`

// BriefingDateLayout renders dates like "Monday, January 02, 2006".
const BriefingDateLayout = "Monday, January 02, 2006"

var (
	organizeThoughtPrompt = template.Must(template.New("organizeThought").Parse(organizeThoughtTemplate))
	dailyBriefingPrompt   = template.Must(template.New("dailyBriefing").Parse(dailyBriefingTemplate))
)

func renderPrompt(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
