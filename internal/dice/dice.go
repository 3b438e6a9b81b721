// Package dice evaluates NdS+M dice expressions and derived attribute
// modifiers.
package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"emberdeep/internal/rng"
)

// ErrInvalidCount indicates a roll request for fewer than one die.
var ErrInvalidCount = errors.New("dice: at least one die must be rolled")

// ErrInvalidSides indicates a die with fewer than one side.
var ErrInvalidSides = errors.New("dice: dice must have at least one side")

// ErrInvalidExpression indicates text that is not NdS+M notation.
var ErrInvalidExpression = errors.New("dice: invalid dice expression")

// Result holds the full audit trail for one roll.
type Result struct {
	Expression string `json:"expression"`
	Dice       []int  `json:"dice"`
	Modifier   int    `json:"modifier"`
	Total      int    `json:"total"`
}

// String formats the roll for logs and the CLI, e.g. "2d6+3 = 12 (4+5+3)".
func (r Result) String() string {
	parts := make([]string, 0, len(r.Dice)+1)
	for _, d := range r.Dice {
		parts = append(parts, strconv.Itoa(d))
	}
	if r.Modifier != 0 {
		parts = append(parts, fmt.Sprintf("%+d", r.Modifier))
	}
	return fmt.Sprintf("%s = %d (%s)", r.Expression, r.Total, strings.Join(parts, "+"))
}

// Roll draws numDice uniform values in [1, sides], sums them and adds
// modifier. Deterministic given a seeded src.
func Roll(src rng.Source, numDice, sides, modifier int) (Result, error) {
	if numDice < 1 {
		return Result{}, ErrInvalidCount
	}
	if sides < 1 {
		return Result{}, ErrInvalidSides
	}

	draws := make([]int, numDice)
	total := modifier
	for i := range draws {
		draws[i] = 1 + src.Intn(sides)
		total += draws[i]
	}

	return Result{
		Expression: expression(numDice, sides, modifier),
		Dice:       draws,
		Modifier:   modifier,
		Total:      total,
	}, nil
}

func expression(numDice, sides, modifier int) string {
	s := fmt.Sprintf("%dd%d", numDice, sides)
	if modifier != 0 {
		s += fmt.Sprintf("%+d", modifier)
	}
	return s
}

var exprPattern = regexp.MustCompile(`^(\d*)[dD](\d+)([+-]\d+)?$`)

// Parse reads NdS+M notation ("2d6+3", "d20", "3d8-1"). An omitted count
// means a single die.
func Parse(expr string) (numDice, sides, modifier int, err error) {
	m := exprPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}

	numDice = 1
	if m[1] != "" {
		numDice, err = strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
		}
	}
	sides, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
		}
	}
	if numDice < 1 {
		return 0, 0, 0, ErrInvalidCount
	}
	if sides < 1 {
		return 0, 0, 0, ErrInvalidSides
	}
	return numDice, sides, modifier, nil
}

// AttributeModifier maps an attribute score to its derived modifier,
// floor((score-10)/2). Division rounds toward negative infinity, so a
// score of 7 yields -2, not -1.
func AttributeModifier(score int) int {
	d := score - 10
	if d >= 0 {
		return d / 2
	}
	return -((-d + 1) / 2)
}
