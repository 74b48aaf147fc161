package domain

import (
	"math"
	"strconv"
	"strings"
)

// ChartType tells the client how to draw a mission dataset.
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)

// Mission is a single quiz unit offered to one role.
type Mission struct {
	ID          string
	Title       string
	Description string
	Role        Role
}

// DataPoint is one bar or point of a mission chart.
type DataPoint struct {
	Year  int
	Value float64
	Label string
}

// MissionDataset is the chart and question shown during a mission.
type MissionDataset struct {
	MissionID string
	Points    []DataPoint
	Question  string
	ChartType ChartType
}

// MissionAnswerSpec is the reference answer of a mission.
type MissionAnswerSpec struct {
	ReferenceAnswer float64
	ToleranceRatio  float64
	Unit            string
}

// DefaultToleranceRatio applies to missions without an override.
const DefaultToleranceRatio = 0.15

// ToleranceTable resolves a mission ID to its tolerance ratio.
type ToleranceTable struct {
	defaultRatio float64
	overrides    map[string]float64
}

// NewToleranceTable builds a table; overrides is copied.
func NewToleranceTable(defaultRatio float64, overrides map[string]float64) ToleranceTable {
	copied := make(map[string]float64, len(overrides))
	for k, v := range overrides {
		copied[k] = v
	}
	return ToleranceTable{defaultRatio: defaultRatio, overrides: copied}
}

// Default returns the ratio used for missions without an override.
func (t ToleranceTable) Default() float64 {
	return t.defaultRatio
}

// Lookup returns the ratio for missionID.
func (t ToleranceTable) Lookup(missionID string) float64 {
	if ratio, ok := t.overrides[missionID]; ok {
		return ratio
	}
	return t.defaultRatio
}

// Evaluate reports whether |userAnswer - referenceAnswer| <= referenceAnswer*toleranceRatio.
// The interval is closed. A zero reference requires an exact match and a
// negative reference accepts nothing. Any NaN or infinite operand yields false.
func Evaluate(userAnswer, referenceAnswer, toleranceRatio float64) bool {
	for _, v := range []float64{userAnswer, referenceAnswer, toleranceRatio} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return math.Abs(userAnswer-referenceAnswer) <= referenceAnswer*toleranceRatio
}

// ParseAnswer reads the leading number of free-form text, so "60%" and
// "140 ppm" read as 60 and 140. Surrounding whitespace is ignored and the first
// comma is taken as the decimal separator ("1,2,3" reads as 1.2). Text without a
// leading number yields NaN, which Evaluate always rejects.
func ParseAnswer(text string) float64 {
	s := strings.TrimSpace(text)
	s = strings.Replace(s, ",", ".", 1)
	prefix := numericPrefix(s)
	if prefix == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// numericPrefix returns the longest prefix of s of the form [+-]digits[.digits][e[+-]digits].
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// QuizSubmission is a single answer to a mission, consumed immediately.
type QuizSubmission struct {
	MissionID  string
	UserAnswer string
}

// QuizVerdict is the outcome of checking a submission.
type QuizVerdict struct {
	MissionID  string
	RawAnswer  string
	UserAnswer float64
	Correct    bool
	Answer     MissionAnswerSpec
}

// Parsed reports whether the raw answer was a number.
func (v QuizVerdict) Parsed() bool {
	return !math.IsNaN(v.UserAnswer)
}

// Judge parses and evaluates a submission against its answer spec.
func Judge(sub QuizSubmission, spec MissionAnswerSpec) QuizVerdict {
	parsed := ParseAnswer(sub.UserAnswer)
	return QuizVerdict{
		MissionID:  sub.MissionID,
		RawAnswer:  sub.UserAnswer,
		UserAnswer: parsed,
		Correct:    Evaluate(parsed, spec.ReferenceAnswer, spec.ToleranceRatio),
		Answer:     spec,
	}
}
