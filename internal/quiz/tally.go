// Package quiz scores the four-pair astronaut trait questionnaire.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAnswers is returned when there is nothing to score.
var ErrNoAnswers = errors.New("missing answers")

// Pair identifies one trait axis.
type Pair string

const (
	BoldReserved     Pair = "BR"
	PioneerGlobalist Pair = "PG"
	ScholarCommon    Pair = "SC"
	LeaderMember     Pair = "LM"
)

// Pairs lists the axes in type-code order.
var Pairs = []Pair{BoldReserved, PioneerGlobalist, ScholarCommon, LeaderMember}

var letters = map[Pair][2]string{
	BoldReserved:     {"B", "R"},
	PioneerGlobalist: {"P", "G"},
	ScholarCommon:    {"S", "C"},
	LeaderMember:     {"L", "M"},
}

// Threshold is the number of first-trait answers needed to win a pair.
const Threshold = 3

// Answer is one yes/no response. Yes is nil when the question was skipped.
// Reverse marks questions where "yes" counts toward the second trait.
type Answer struct {
	ID      string `json:"id"`
	Pair    Pair   `json:"pair"`
	Yes     *bool  `json:"yes"`
	Reverse bool   `json:"reverse"`
}

// Count is the per-pair tally.
type Count struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// Result is the scored questionnaire.
type Result struct {
	Type      string         `json:"type"`
	Tally     map[Pair]Count `json:"tally"`
	Summary   string         `json:"summary"`
	Strengths []string       `json:"strengths"`
	Tips      []string       `json:"tips"`
}

// Fixed guidance returned with every locally scored result.
var (
	DefaultStrengths = []string{"Curiosity", "Structure", "Momentum"}
	DefaultTips      = []string{"Timebox exploration", "Share decisions early"}
)

// Score tallies answers and derives the four-letter type code. Skipped answers
// and unknown pairs are ignored.
func Score(answers []Answer) (*Result, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	tally := make(map[Pair]Count, len(Pairs))
	for _, p := range Pairs {
		tally[p] = Count{}
	}
	for _, a := range answers {
		if a.Yes == nil {
			continue
		}
		c, ok := tally[a.Pair]
		if !ok {
			continue
		}
		if *a.Yes != a.Reverse {
			c.First++
		} else {
			c.Second++
		}
		tally[a.Pair] = c
	}
	var code strings.Builder
	for _, p := range Pairs {
		l := letters[p]
		if tally[p].First >= Threshold {
			code.WriteString(l[0])
		} else {
			code.WriteString(l[1])
		}
	}
	typ := code.String()
	return &Result{
		Type:      typ,
		Tally:     tally,
		Summary:   fmt.Sprintf("You resemble the %s pattern. Practical tips follow.", typ),
		Strengths: append([]string(nil), DefaultStrengths...),
		Tips:      append([]string(nil), DefaultTips...),
	}, nil
}
