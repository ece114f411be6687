// Package mailfile reads RFC 5322 messages saved as .eml files and turns them
// into the subject, body and sender the classifier works with.
package mailfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

const Extension = ".eml"

// Message is a parsed mail file. Text and HTML hold the first inline part of
// each kind; either may be empty.
type Message struct {
	Path    string    `json:"path,omitempty"`
	ID      string    `json:"id,omitempty"`
	Subject string    `json:"subject"`
	From    string    `json:"from,omitempty"`
	Sender  string    `json:"sender"`
	Date    time.Time `json:"date"`
	Text    string    `json:"-"`
	HTML    string    `json:"-"`
}

// Body returns the plain text part, or the HTML part converted to text when
// the message has no plain text.
func (m *Message) Body() (string, error) {
	if m.Text != "" || m.HTML == "" {
		return m.Text, nil
	}
	return HTMLToText(m.HTML)
}

// ParseFile opens and parses a single mail file.
func ParseFile(path string) (*Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	msg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	msg.Path = path
	return msg, nil
}

// Parse reads one message. Parts in an unknown charset are kept as raw bytes
// rather than rejected.
func Parse(r io.Reader) (*Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil && !message.IsUnknownCharset(err) {
		return nil, fmt.Errorf("reading message header: %w", err)
	}
	defer mr.Close()

	msg := &Message{}
	msg.Subject, _ = mr.Header.Subject()
	msg.From, _ = mr.Header.Text("From")
	msg.Sender = ParseFrom(msg.From)
	msg.ID, _ = mr.Header.MessageID()
	if date, err := mr.Header.Date(); err == nil {
		msg.Date = date
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !message.IsUnknownCharset(err) {
			return nil, fmt.Errorf("reading message part: %w", err)
		}
		if part == nil {
			break
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		contentType, _, _ := h.ContentType()
		if contentType == "" {
			contentType = "text/plain"
		}

		body, err := io.ReadAll(part.Body)
		if err != nil {
			return nil, fmt.Errorf("reading %s part: %w", contentType, err)
		}

		switch {
		case contentType == "text/plain" && msg.Text == "":
			msg.Text = string(body)
		case contentType == "text/html" && msg.HTML == "":
			msg.HTML = string(body)
		}
	}

	return msg, nil
}

var angleAddress = regexp.MustCompile(`<([^>]+)>`)

// ParseFrom returns the bare address of a From header such as
// "Jane Doe <jane@acme.com>". Values without an address are returned as is.
func ParseFrom(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	if m := angleAddress.FindStringSubmatch(from); m != nil {
		return m[1]
	}
	if strings.Contains(from, "@") {
		return strings.TrimSpace(from)
	}
	return from
}

// List returns the mail files in dir, sorted by name. Subdirectories are not
// searched.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), Extension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
