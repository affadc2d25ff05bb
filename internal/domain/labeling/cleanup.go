package labeling

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// CleanupRule is an ordered, toggleable substring-removal instruction
// applied to raw product names before printing. List order is the
// application order, so overlapping keywords must be arranged carefully
// (removing "premium" first keeps "premium kit" from ever matching).
type CleanupRule struct {
	ID          uuid.UUID `json:"id"`
	Keyword     string    `json:"keyword"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewCleanupRule creates an enabled cleanup rule
func NewCleanupRule(keyword, description string) *CleanupRule {
	return &CleanupRule{
		ID:          uuid.New(),
		Keyword:     keyword,
		Description: strings.TrimSpace(description),
		Enabled:     true,
		CreatedAt:   time.Now(),
	}
}

// CleanupRulePatch carries optional field updates for a cleanup rule
type CleanupRulePatch struct {
	Keyword     *string
	Description *string
	Enabled     *bool
}

// Apply merges the patch into the rule. Blanking the keyword is
// rejected; a rule that should stop matching is disabled, not emptied.
func (r *CleanupRule) Apply(patch CleanupRulePatch) error {
	if patch.Keyword != nil {
		if strings.TrimSpace(*patch.Keyword) == "" {
			return shared.NewDomainError("INVALID_KEYWORD", "Keyword cannot be empty")
		}
		r.Keyword = *patch.Keyword
	}
	if patch.Description != nil {
		r.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Enabled != nil {
		r.Enabled = *patch.Enabled
	}
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// Sanitize applies the rules to a raw product name in list order. Each
// enabled rule with a non-empty keyword removes every literal occurrence
// of its keyword, trimming surrounding whitespace after each removal.
// Remaining runs of whitespace collapse to a single space at the end.
func Sanitize(name string, rules []CleanupRule) string {
	out := name
	for _, rule := range rules {
		if !rule.Enabled || rule.Keyword == "" {
			continue
		}
		out = strings.TrimSpace(strings.ReplaceAll(out, rule.Keyword, ""))
	}
	return whitespaceRun.ReplaceAllString(out, " ")
}
