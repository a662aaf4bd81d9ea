package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"time"
)

//go:embed templates/report.html
var htmlTemplate string

//go:embed templates/styles.css
var cssContent string

//go:embed templates/replay.js
var jsContent string

// HTMLReportData is everything the replay page script reads.
type HTMLReportData struct {
	Export
	GeneratedAt time.Time `json:"generatedAt"`
}

// WriteHTML writes a self-contained page that replays the trace in a
// browser with play, pause, step and scrub controls.
func (r *Report) WriteHTML(w io.Writer) error {
	data := HTMLReportData{
		Export:      r.Export(),
		GeneratedAt: time.Now(),
	}

	// json.Marshal escapes <, > and &, so the payload is safe inside <script>.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal report data: %w", err)
	}

	title := fmt.Sprintf("%s trace", r.Algorithm.Name)
	if _, err := io.WriteString(w, generateSingleFileHTMLContent(title, string(jsonData))); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

func generateSingleFileHTMLContent(title, jsonData string) string {
	return strings.NewReplacer(
		"{{TITLE}}", html.EscapeString(title),
		"{{CSS_CONTENT}}", cssContent,
		"{{JS_CONTENT}}", jsContent,
		"{{JSON_DATA}}", jsonData,
	).Replace(htmlTemplate)
}
