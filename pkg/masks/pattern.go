package masks

import "regexp"

type PatternType string

const (
	Inclusive PatternType = "inclusive"
	Exclusive PatternType = "exclusive"
)

type Pattern struct {
	Type  PatternType
	Regex string
	re    *regexp.Regexp
}

func newPattern(t PatternType, regex string) (Pattern, error) {
	re, err := regexp.Compile(regex)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Type: t, Regex: regex, re: re}, nil
}

func (p Pattern) Match(fileName string) (bool, error) {
	re := p.re
	if re == nil {
		var err error
		if re, err = regexp.Compile(p.Regex); err != nil {
			return false, err
		}
	}
	return re.MatchString(fileName), nil
}
