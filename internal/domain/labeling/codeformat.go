package labeling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// CodeFormat is a named pattern for generating sequential codes. The
// pattern may contain {DATE:<fmt>}, {SEQ:<width>} and {SKU} tokens. Seq
// is a strictly increasing counter private to the format, starting at 1
// and advanced exactly once per generation.
type CodeFormat struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	Seq       int64     `json:"seq"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCodeFormat creates a code format with its sequence at 1
func NewCodeFormat(name, pattern string) (*CodeFormat, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Format name cannot be empty")
	}
	if strings.TrimSpace(pattern) == "" {
		return nil, shared.NewDomainError("INVALID_PATTERN", "Format pattern cannot be empty")
	}

	return &CodeFormat{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Pattern:   pattern,
		Seq:       1,
		CreatedAt: time.Now(),
	}, nil
}

// CodeFormatPatch carries optional field updates for a code format.
// The sequence is deliberately absent: a new counter means a new format.
type CodeFormatPatch struct {
	Name    *string
	Pattern *string
}

// Apply merges the patch into the format, holding updates to the same
// validation as creation.
func (f *CodeFormat) Apply(patch CodeFormatPatch) error {
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return shared.NewDomainError("INVALID_NAME", "Format name cannot be empty")
		}
		f.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Pattern != nil {
		if strings.TrimSpace(*patch.Pattern) == "" {
			return shared.NewDomainError("INVALID_PATTERN", "Format pattern cannot be empty")
		}
		f.Pattern = *patch.Pattern
	}
	return nil
}

var (
	dateToken = regexp.MustCompile(`\{DATE:([^}]*)\}`)
	seqToken  = regexp.MustCompile(`\{SEQ:(\d+)\}`)
)

// Render expands the pattern at the given instant using the current
// sequence value. Pure; advancing the sequence is the caller's job so
// that the increment and the persistence write stay together.
func (f *CodeFormat) Render(now time.Time, sku string) string {
	out := dateToken.ReplaceAllStringFunc(f.Pattern, func(token string) string {
		layout := dateToken.FindStringSubmatch(token)[1]
		return formatDate(layout, now)
	})
	out = seqToken.ReplaceAllStringFunc(out, func(token string) string {
		width, _ := strconv.Atoi(seqToken.FindStringSubmatch(token)[1])
		// Sequences past the configured width print in full.
		return fmt.Sprintf("%0*d", width, f.Seq)
	})
	return strings.ReplaceAll(out, "{SKU}", sku)
}

// Advance increments the sequence by one
func (f *CodeFormat) Advance() {
	f.Seq++
}

// dateReplacements is ordered longest-token-first so that yyyy is never
// partially consumed by yy.
var dateReplacements = []struct {
	token  string
	render func(t time.Time) string
}{
	{"yyyy", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"yy", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"dd", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"HH", func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) }},
	{"mm", func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) }},
	{"ss", func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) }},
}

func formatDate(layout string, now time.Time) string {
	out := layout
	for _, r := range dateReplacements {
		out = strings.ReplaceAll(out, r.token, r.render(now))
	}
	return out
}
