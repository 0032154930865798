// Package prompt turns free-text chart requests into chart intents.
package prompt

import (
	"strconv"
	"strings"
	"unicode"

	"engine_rul/internal/models"
)

const (
	sensorKeyword = "sensor"
	engineKeyword = "engine"
)

// Interpret maps any prompt to exactly one intent. Matching is
// case-insensitive; a number counts when it follows "sensor" or "engine"
// after optional whitespace or underscores ("sensor 3", "sensor_3",
// "engine__ 12"). The leftmost such occurrence wins.
func Interpret(prompt string) models.ChartIntent {
	text := strings.ToLower(prompt)

	sensor, hasSensor := numberAfterKeyword(text, sensorKeyword)
	engine, hasEngine := numberAfterKeyword(text, engineKeyword)

	switch {
	case hasSensor && hasEngine:
		return models.SensorForEngine(sensor, engine)
	case hasSensor:
		return models.SensorOverview(sensor)
	case hasEngine:
		return models.EngineOverview(engine)
	default:
		return models.DefaultIntent()
	}
}

// numberAfterKeyword scans occurrences of keyword left to right and returns
// the first one followed by a decimal number.
func numberAfterKeyword(text, keyword string) (int, bool) {
	from := 0
	for {
		i := strings.Index(text[from:], keyword)
		if i < 0 {
			return 0, false
		}
		at := from + i
		if n, ok := leadingNumber(text[at+len(keyword):]); ok {
			return n, true
		}
		from = at + 1
	}
}

func isSeparator(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}

// leadingNumber skips separators and parses the ASCII digit run that
// follows. Runs that overflow int do not count.
func leadingNumber(s string) (int, bool) {
	rest := strings.TrimLeftFunc(s, isSeparator)
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
