// Package ics renders the downloadable calendar files for the wedding events.
// The output follows RFC 5545 closely enough for Google/Apple/Outlook imports:
// escaped text values, 74-character line folding, CRLF terminators.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/istvanv2/giwedding/internal/i18n"
)

type EventKind string

const (
	EventCeremony    EventKind = "ceremony"
	EventCelebration EventKind = "celebration"
)

// Fixed wall-clock instants for 2026-07-11. Romania is UTC+3 in July (EEST),
// so the 13:00 ceremony is 10:00 UTC.
const (
	ceremonyStartUTC    = "20260711T100000Z"
	ceremonyEndUTC      = "20260711T110000Z"
	celebrationStartUTC = "20260711T110000Z"
	celebrationEndUTC   = "20260711T180000Z"
)

const maxLineLen = 74

// ParseEventKind maps a raw query value to an event kind. Anything other
// than "celebration" selects the ceremony.
func ParseEventKind(s string) EventKind {
	if s == string(EventCelebration) {
		return EventCelebration
	}
	return EventCeremony
}

// Encode renders the calendar file for the given event and locale and returns
// the payload together with a suggested download filename. Unknown locales
// fall back to the default; the function never fails. Repeated calls differ
// only in the DTSTAMP line.
func Encode(kind EventKind, loc i18n.Locale) ([]byte, string) {
	if !i18n.Valid(loc) {
		loc = i18n.DefaultLocale
	}
	dict := i18n.Get(loc)

	event := dict.Ceremony
	start, end := ceremonyStartUTC, ceremonyEndUTC
	if kind == EventCelebration {
		event = dict.Celebration
		start, end = celebrationStartUTC, celebrationEndUTC
	}

	summary := dict.CalendarEventPrefix + " - " + event.Title
	location := event.Location + ", " + event.Address
	description := event.Description + "\n\n" + location
	uid := fmt.Sprintf("%s-%s-giwedding-20260711@giwedding.com", kind, loc)
	dtstamp := time.Now().UTC().Format("20060102T150405Z")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//GIwedding//Wedding Events//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + dtstamp,
		"DTSTART:" + start,
		"DTEND:" + end,
		"SUMMARY:" + escapeText(summary),
		"DESCRIPTION:" + escapeText(description),
		"LOCATION:" + escapeText(location),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(foldLine(line))
		b.WriteString("\r\n")
	}

	filename := fmt.Sprintf("giwedding-%s-%s.ics", kind, loc)
	return []byte(b.String()), filename
}

// escapeText applies the TEXT value escaping from RFC 5545 §3.3.11.
// Backslash must go first.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}

// UnescapeText reverses escapeText. Exported for consumers that need to read
// values back out of a generated file.
func UnescapeText(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n', 'N':
				b.WriteByte('\n')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// foldLine splits a content line into 74-character segments, each continuation
// prefixed with a single space and joined by CRLF. Splits on rune boundaries
// so multi-byte locale text stays valid UTF-8.
func foldLine(line string) string {
	runes := []rune(line)
	if len(runes) <= maxLineLen {
		return line
	}

	var chunks []string
	for i := 0; i < len(runes); i += maxLineLen {
		end := i + maxLineLen
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[i:end])
		if i > 0 {
			chunk = " " + chunk
		}
		chunks = append(chunks, chunk)
	}
	return strings.Join(chunks, "\r\n")
}
