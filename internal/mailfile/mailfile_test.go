package mailfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multipartMessage = "From: \"Jane Recruiter\" <jane@acme.com>\r\n" +
	"To: me@example.com\r\n" +
	"Subject: Interview Invitation\r\n" +
	"Message-Id: <abc123@acme.com>\r\n" +
	"Date: Mon, 02 Mar 2026 10:00:00 +0000\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/alternative; boundary=\"b1\"\r\n" +
	"\r\n" +
	"--b1\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"We would like to invite you to interview.\r\n" +
	"--b1\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<p>We would like to <b>invite</b> you.</p>\r\n" +
	"--b1--\r\n"

const htmlOnlyMessage = "From: careers@globex.com\r\n" +
	"Subject: =?utf-8?q?Application_Received?=\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<html><head><title>ignored</title><style>p{color:red}</style></head>" +
	"<body><p>Thank you for applying.</p><img src=\"x.png\" alt=\"logo\">" +
	"<p>See <a href=\"https://globex.com/status\">your status</a></p></body></html>\r\n"

const plainMessage = "From: someone\r\n" +
	"Subject: Hello\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"Just checking in.\r\n"

func TestParseMultipart(t *testing.T) {
	msg, err := Parse(strings.NewReader(multipartMessage))
	require.NoError(t, err)

	assert.Equal(t, "Interview Invitation", msg.Subject)
	assert.Equal(t, "jane@acme.com", msg.Sender)
	assert.Equal(t, "abc123@acme.com", msg.ID)
	assert.Equal(t, 2026, msg.Date.Year())
	assert.Contains(t, msg.Text, "invite you to interview")
	assert.Contains(t, msg.HTML, "<b>invite</b>")

	body, err := msg.Body()
	require.NoError(t, err)
	assert.Equal(t, msg.Text, body)
}

func TestParseHTMLOnly(t *testing.T) {
	msg, err := Parse(strings.NewReader(htmlOnlyMessage))
	require.NoError(t, err)

	assert.Equal(t, "Application Received", msg.Subject)
	assert.Equal(t, "careers@globex.com", msg.Sender)
	assert.Empty(t, msg.Text)

	body, err := msg.Body()
	require.NoError(t, err)
	assert.Equal(t, "Thank you for applying.\nSee your status", body)
}

func TestParseBareSender(t *testing.T) {
	msg, err := Parse(strings.NewReader(plainMessage))
	require.NoError(t, err)

	assert.Equal(t, "someone", msg.Sender)
	assert.Contains(t, msg.Text, "Just checking in.")
	assert.True(t, msg.Date.IsZero())
}

func TestParseFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from   string
		expect string
	}{
		{from: "John Doe <john@company.com>", expect: "john@company.com"},
		{from: "john@company.com", expect: "john@company.com"},
		{from: "  john@company.com ", expect: "john@company.com"},
		{from: "Broken <weird address>", expect: "weird address"},
		{from: "no address at all", expect: "no address at all"},
		{from: "", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			t.Parallel()
			if got := ParseFrom(tt.from); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	text, err := HTMLToText(`<div>Line one<br>Line   two</div><script>alert(1)</script><ul><li>A</li><li>B</li></ul>`)
	require.NoError(t, err)
	assert.Equal(t, "Line one\nLine two\nA\nB", text)
}

func TestListAndParseFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("b.eml", htmlOnlyMessage)
	write("a.EML", multipartMessage)
	write("notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.eml"), 0o755))

	paths, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.EML"), filepath.Join(dir, "b.eml")}, paths)

	msg, err := ParseFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, paths[0], msg.Path)
	assert.Equal(t, "Interview Invitation", msg.Subject)

	_, err = ParseFile(filepath.Join(dir, "missing.eml"))
	assert.Error(t, err)

	_, err = List(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
