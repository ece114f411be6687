package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/jobmail/internal/classifier"
	"github.com/spigell/jobmail/internal/event"
)

var (
	received = classifier.Input{
		Subject: "Application Received",
		Body:    "Thank you for applying.",
		Sender:  "noreply@company.com",
	}
	rejected = classifier.Input{
		Subject: "Update",
		Body:    "Unfortunately we have decided to move forward with other candidates.",
		Sender:  "hr@company.com",
	}
	digest = classifier.Input{
		Subject: "New jobs for you",
		Body:    "Here are new Software Engineer jobs at Acme. Manage your notifications. Unsubscribe from job alerts.",
		Sender:  "alerts@jobboard.com",
	}
	chatter = classifier.Input{
		Subject: "Hey there",
		Body:    "How is the weather today?",
		Sender:  "friend@gmail.com",
	}
)

func sampleResults(t *testing.T) *Results {
	t.Helper()

	results, err := New(nil, 2, nil).Classify(context.Background(), []Source{
		{ID: "received", Input: received},
		{ID: "rejected", Input: rejected},
		{ID: "digest", Input: digest},
		{ID: "chatter", Input: chatter},
	})
	require.NoError(t, err)
	require.Equal(t, 4, results.Len())
	return results
}

func TestClassifyKeepsOrder(t *testing.T) {
	results := sampleResults(t)

	ids := make([]string, 0, results.Len())
	for _, item := range results.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"received", "rejected", "digest", "chatter"}, ids)

	assert.Equal(t, event.ApplicationReceived, results.Items[0].Output.EventType)
	assert.Equal(t, 0.71, results.Items[0].Output.Confidence)
	assert.Equal(t, event.Rejection, results.Items[1].Output.EventType)
	assert.True(t, results.Items[2].Output.IsNewsletter())
	assert.Equal(t, event.Other, results.Items[3].Output.EventType)
}

func TestClassifyGeneratesIDs(t *testing.T) {
	results, err := New(nil, 0, nil).Classify(context.Background(), []Source{{Input: chatter}, {Input: chatter}})
	require.NoError(t, err)

	for _, item := range results.Items {
		_, err := uuid.Parse(item.ID)
		require.NoError(t, err)
	}
	assert.NotEqual(t, results.Items[0].ID, results.Items[1].ID)
}

func TestClassifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, 1, nil).Classify(ctx, []Source{{Input: received}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestClassifyLogsAtDebug(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	_, err := New(nil, 1, zap.New(core)).Classify(context.Background(), []Source{{ID: "x", Path: "inbox/x.eml", Input: rejected}})
	require.NoError(t, err)

	entries := observed.FilterMessage("message classified").All()
	require.Len(t, entries, 1)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "x", ctx["message_id"])
	assert.Equal(t, "inbox/x.eml", ctx["path"])
	assert.Equal(t, "REJECTION", ctx["event_type"])
	assert.Equal(t, "Update", ctx["subject"])
	assert.Equal(t, true, ctx["fields_extracted"])

	observed.TakeAll()
	_, err = New(nil, 1, zap.New(core)).Classify(context.Background(), []Source{{ID: "y", Input: chatter}})
	require.NoError(t, err)
	assert.Equal(t, false, observed.All()[0].ContextMap()["fields_extracted"])
}

func TestReports(t *testing.T) {
	results := sampleResults(t)

	byType := results.ReportByEventType()
	require.Len(t, byType["OTHER"], 2)
	require.Len(t, byType["REJECTION"], 1)
	assert.Equal(t, "rejected", byType["REJECTION"][0]["id"])
	assert.Equal(t, "0.53", byType["REJECTION"][0]["confidence"])
	assert.Equal(t, "Company", byType["REJECTION"][0]["company"])

	byCompany := results.ReportByCompany()
	assert.Len(t, byCompany["Company"], 2)
	assert.Len(t, byCompany["Acme"], 1)
	require.Len(t, byCompany[unknownCompany], 1)
	assert.Equal(t, "chatter", byCompany[unknownCompany][0]["id"])
	_, ok := byCompany[unknownCompany][0]["company"]
	assert.False(t, ok, "absent fields are left out of the summary")

	counts := results.Counts()
	assert.Equal(t, 2, counts[event.Other])
	assert.Equal(t, 1, counts[event.ApplicationReceived])
}

func TestExclude(t *testing.T) {
	results := sampleResults(t)

	removed := results.Exclude(func(r *Result) bool { return r.Output.IsNewsletter() })
	assert.Equal(t, []string{"digest"}, removed)
	assert.Nil(t, results.FindByID("digest"))
	assert.NotNil(t, results.FindByID("chatter"))

	removed = results.ExcludeSenders([]string{" GMAIL.com ", ""})
	assert.Equal(t, []string{"chatter"}, removed)

	removed = results.ExcludeSenders([]string{"hr@company.com"})
	assert.Equal(t, []string{"rejected"}, removed)

	assert.Nil(t, results.ExcludeSenders(nil))
	assert.Equal(t, 1, results.Len())
	assert.Equal(t, "received", results.Items[0].ID)
}

func TestDumpToTmpFile(t *testing.T) {
	results := sampleResults(t)

	path, err := results.DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Items []struct {
			ID     string `json:"id"`
			Output struct {
				EventType  string  `json:"eventType"`
				Confidence float64 `json:"confidence"`
			} `json:"output"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Items, 4)
	assert.Equal(t, "REJECTION", decoded.Items[1].Output.EventType)
	assert.Equal(t, 0.53, decoded.Items[1].Output.Confidence)
}

func TestClassifyFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	first := write("a.eml", "From: Careers <noreply@company.com>\r\n"+
		"Subject: Application Received\r\n"+
		"Message-Id: <a1@company.com>\r\n"+
		"Date: Mon, 02 Mar 2026 10:00:00 +0000\r\n"+
		"Content-Type: text/plain\r\n"+
		"\r\n"+
		"Thank you for applying.\r\n")
	second := write("b.eml", "From: hr@company.com\r\n"+
		"Subject: Update\r\n"+
		"Content-Type: text/html\r\n"+
		"\r\n"+
		"<p>Unfortunately we have decided to move forward with other candidates.</p>\r\n")
	missing := filepath.Join(dir, "missing.eml")

	core, observed := observer.New(zapcore.InfoLevel)
	results, err := New(nil, 2, zap.New(core)).ClassifyFiles(context.Background(), []string{first, missing, second})
	require.NoError(t, err)
	require.Equal(t, 2, results.Len())

	assert.Equal(t, "a1@company.com", results.Items[0].ID)
	assert.Equal(t, first, results.Items[0].Path)
	assert.Equal(t, event.ApplicationReceived, results.Items[0].Output.EventType)
	assert.Equal(t, "Careers <noreply@company.com>", results.Items[0].From)
	require.NotNil(t, results.Items[0].Date)
	assert.Equal(t, 2026, results.Items[0].Date.Year())

	summary := results.ReportByEventType()["APPLICATION_RECEIVED"][0]
	assert.Equal(t, "2026-03-02T10:00:00Z", summary["date"])
	assert.Equal(t, "Careers <noreply@company.com>", summary["from"])

	assert.Nil(t, results.Items[1].Date, "messages without a Date header have no date")
	assert.Equal(t, second, results.Items[1].Path)
	assert.Equal(t, "hr@company.com", results.Items[1].Input.Sender)
	assert.Equal(t, event.Rejection, results.Items[1].Output.EventType)

	warnings := observed.FilterMessage("skipping unreadable message").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, missing, warnings[0].ContextMap()["path"])
}
