package idgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// CustomerStrategy issues YY-NNN, scoped to the two-digit year. Only ids of
// the current year prefix are considered; the sequence restarts each year.
// A year holds at most 999 customers.
type CustomerStrategy struct{}

var customerIDPattern = regexp.MustCompile(`^(\d{2})-(\d{3})$`)

func (CustomerStrategy) UsesExisting() bool { return true }

func (CustomerStrategy) Scope(requested string, now time.Time) (string, error) {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested, nil
	}
	return now.Format("06"), nil
}

func (CustomerStrategy) Next(existing []Existing, scope string, _ time.Time) (string, error) {
	max := 0
	for _, e := range existing {
		m := customerIDPattern.FindStringSubmatch(strings.TrimSpace(e.ID))
		if m == nil || m[1] != scope {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n > max {
			max = n
		}
	}
	if max >= 999 {
		return "", fmt.Errorf("%w: customer year %s", ErrSequenceExhausted, scope)
	}
	return fmt.Sprintf("%s-%03d", scope, max+1), nil
}

// ProjectStrategy issues PROJ-YYMM-NNN, scoped to the year and month.
//
// By default the next sequence is one past the highest suffix in scope.
// LastRow instead increments the suffix of the last matching row in storage
// order, which repeats ids when rows are out of order.
type ProjectStrategy struct {
	LastRow bool
}

func (ProjectStrategy) UsesExisting() bool { return true }

func (ProjectStrategy) Scope(requested string, now time.Time) (string, error) {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested, nil
	}
	return now.Format("0601"), nil
}

func (s ProjectStrategy) Next(existing []Existing, scope string, _ time.Time) (string, error) {
	prefix := "PROJ-" + scope + "-"
	seq := 0
	for _, e := range existing {
		id := strings.TrimSpace(e.ID)
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if s.LastRow || n > seq {
			seq = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq+1), nil
}

// EstimateStrategy issues EST-{projectId}-{n}: one past the highest numeric
// suffix among rows whose ProjectID column equals the project, starting at 1.
type EstimateStrategy struct{}

func (EstimateStrategy) UsesExisting() bool { return true }

func (EstimateStrategy) Scope(requested string, _ time.Time) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return "", ErrScopeRequired
	}
	return requested, nil
}

func (EstimateStrategy) Next(existing []Existing, scope string, _ time.Time) (string, error) {
	max := 0
	for _, e := range existing {
		if strings.TrimSpace(e.Scope) != scope {
			continue
		}
		id := strings.TrimSpace(e.ID)
		n, err := strconv.Atoi(id[strings.LastIndex(id, "-")+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("EST-%s-%d", scope, max+1), nil
}

// SequenceStrategy issues {prefix}{NNN}: one past the highest numeric suffix,
// zero-padded to width, starting at 1. Suffixes longer than width keep
// counting.
type SequenceStrategy struct {
	prefix  string
	width   int
	pattern *regexp.Regexp
}

func NewSequenceStrategy(prefix string, width int) SequenceStrategy {
	return SequenceStrategy{
		prefix:  prefix,
		width:   width,
		pattern: regexp.MustCompile(fmt.Sprintf(`^%s(\d{%d,})$`, regexp.QuoteMeta(prefix), width)),
	}
}

func (SequenceStrategy) UsesExisting() bool { return true }

func (SequenceStrategy) Scope(string, time.Time) (string, error) { return "", nil }

func (s SequenceStrategy) Next(existing []Existing, _ string, _ time.Time) (string, error) {
	max := 0
	for _, e := range existing {
		m := s.pattern.FindStringSubmatch(strings.TrimSpace(e.ID))
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, max+1), nil
}

// TimestampStrategy issues {Prefix}{unix millis}. Within one process ids are
// strictly increasing: a second request in the same millisecond gets the next
// millisecond.
type TimestampStrategy struct {
	Prefix string

	mu   *sync.Mutex
	last *int64
}

func NewTimestampStrategy(prefix string) TimestampStrategy {
	var last int64
	return TimestampStrategy{Prefix: prefix, mu: &sync.Mutex{}, last: &last}
}

func (TimestampStrategy) UsesExisting() bool { return false }

func (TimestampStrategy) Scope(string, time.Time) (string, error) { return "", nil }

func (s TimestampStrategy) Next(_ []Existing, _ string, now time.Time) (string, error) {
	ms := now.UnixMilli()
	if s.mu != nil {
		s.mu.Lock()
		if ms <= *s.last {
			ms = *s.last + 1
		}
		*s.last = ms
		s.mu.Unlock()
	}
	return s.Prefix + strconv.FormatInt(ms, 10), nil
}
