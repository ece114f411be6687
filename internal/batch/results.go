package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spigell/jobmail/internal/classifier"
	"github.com/spigell/jobmail/internal/event"
)

const unknownCompany = "Unknown Company"

type Results struct {
	Items []*Result `json:"items"`
}

// Result pairs a message with its classification.
type Result struct {
	ID     string            `json:"id"`
	Path   string            `json:"path,omitempty"`
	From   string            `json:"from,omitempty"`
	Date   *time.Time        `json:"date,omitempty"`
	Input  classifier.Input  `json:"input"`
	Output classifier.Output `json:"output"`
}

// Company returns the extracted company or a placeholder for reports.
func (r *Result) Company() string {
	if c := r.Output.ExtractedData.Company; c != "" {
		return c
	}
	return unknownCompany
}

func (r *Result) summary() map[string]string {
	entry := map[string]string{
		"id":         r.ID,
		"subject":    r.Input.Subject,
		"sender":     r.Input.Sender,
		"event_type": r.Output.EventType.String(),
		"confidence": fmt.Sprintf("%.2f", r.Output.Confidence),
	}

	if r.Path != "" {
		entry["path"] = r.Path
	}
	if r.From != "" {
		entry["from"] = r.From
	}
	if r.Date != nil {
		entry["date"] = r.Date.Format(time.RFC3339)
	}

	data := r.Output.ExtractedData
	if data.IsEmpty() {
		return entry
	}

	for key, value := range map[string]string{
		"company":         data.Company,
		"position":        data.Position,
		"interview_date":  data.InterviewDate,
		"assessment_link": data.AssessmentLink,
		"salary":          data.Salary,
		"deadline":        data.Deadline,
	} {
		if value != "" {
			entry[key] = value
		}
	}

	return entry
}

func (r *Results) Len() int {
	return len(r.Items)
}

func (r *Results) FindByID(id string) *Result {
	for _, item := range r.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Counts returns how many results carry each event type.
func (r *Results) Counts() map[event.Type]int {
	counts := make(map[event.Type]int)
	for _, item := range r.Items {
		counts[item.Output.EventType]++
	}
	return counts
}

// ReportByEventType groups result summaries by their event type.
func (r *Results) ReportByEventType() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range r.Items {
		key := item.Output.EventType.String()
		report[key] = append(report[key], item.summary())
	}
	return report
}

// ReportByCompany groups result summaries by the extracted company.
func (r *Results) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range r.Items {
		key := item.Company()
		report[key] = append(report[key], item.summary())
	}
	return report
}

// Exclude removes every result matched by drop and returns the removed IDs.
// The order of the remaining results is preserved.
func (r *Results) Exclude(drop func(*Result) bool) []string {
	var excluded []string
	r.Items = slices.DeleteFunc(r.Items, func(item *Result) bool {
		if drop(item) {
			excluded = append(excluded, item.ID)
			return true
		}
		return false
	})
	return excluded
}

// ExcludeSenders removes results whose sender contains one of the patterns,
// so both full addresses and bare domains work. Matching is case-insensitive.
func (r *Results) ExcludeSenders(patterns []string) []string {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			lowered = append(lowered, p)
		}
	}
	if len(lowered) == 0 {
		return nil
	}

	return r.Exclude(func(item *Result) bool {
		sender := strings.ToLower(item.Input.Sender)
		for _, p := range lowered {
			if strings.Contains(sender, p) {
				return true
			}
		}
		return false
	})
}

func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobmail_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
