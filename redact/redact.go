package redact

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/sonnes/subtitler/core"
)

// Config controls which rules the Redactor applies.
type Config struct {
	Secrets    bool
	PII        bool
	ExtraRules []Rule
	Allowlist  []string // regex patterns whose matches are left as spoken
}

// Redactor masks secrets and personal data spoken aloud in a transcript.
type Redactor struct {
	rules     []Rule
	allowlist []*regexp.Regexp
}

// New creates a Redactor from the given config. An allowlist pattern that
// does not compile is an error.
func New(cfg Config) (*Redactor, error) {
	var rules []Rule
	if cfg.Secrets {
		rules = append(rules, SecretRules()...)
	}
	if cfg.PII {
		rules = append(rules, PIIRules()...)
	}
	rules = append(rules, cfg.ExtraRules...)

	allowlist := make([]*regexp.Regexp, 0, len(cfg.Allowlist))
	for _, pattern := range cfg.Allowlist {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("allowlist pattern %q: %w", pattern, err)
		}
		allowlist = append(allowlist, re)
	}

	return &Redactor{rules: rules, allowlist: allowlist}, nil
}

// Transform implements core.Transformer. Only chunk text is rewritten;
// speaker labels and timestamps pass through.
func (r *Redactor) Transform(t *core.Transcript) error {
	if len(r.rules) == 0 {
		return nil
	}
	for i := range t.Chunks {
		t.Chunks[i].Text = r.redactString(t.Chunks[i].Text)
	}
	return nil
}

// Enabled reports whether any rule is active.
func (r *Redactor) Enabled() bool {
	return len(r.rules) > 0
}

// redactString applies all rules to s. Overlapping matches resolve to
// earliest start, then longest. Allowlisted values are skipped.
func (r *Redactor) redactString(s string) string {
	if len(s) == 0 {
		return s
	}

	type replacement struct {
		start int
		end   int
		text  string
	}

	var reps []replacement
	for _, rule := range r.rules {
		for _, m := range rule.Detect(s) {
			if r.isAllowed(m.Value) {
				continue
			}
			reps = append(reps, replacement{
				start: m.Start,
				end:   m.End,
				text:  rule.Replacement(m),
			})
		}
	}

	if len(reps) == 0 {
		return s
	}

	// Sort by start position, then longest match first for ties.
	sort.Slice(reps, func(i, j int) bool {
		if reps[i].start != reps[j].start {
			return reps[i].start < reps[j].start
		}
		return reps[i].end > reps[j].end
	})

	// Apply non-overlapping replacements.
	var result []byte
	pos := 0
	for _, rep := range reps {
		if rep.start < pos {
			continue // overlaps with a previous replacement
		}
		result = append(result, s[pos:rep.start]...)
		result = append(result, rep.text...)
		pos = rep.end
	}
	result = append(result, s[pos:]...)
	return string(result)
}

func (r *Redactor) isAllowed(value string) bool {
	for _, re := range r.allowlist {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
