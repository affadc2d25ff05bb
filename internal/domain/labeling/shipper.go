package labeling

import (
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sellerdesk/backend/internal/domain/catalog"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// Shipper is an external partner to whom labeled goods are sent. It owns
// an ordered set of barcode rules mapping products to label templates.
// It is the aggregate root for rule-related operations.
type Shipper struct {
	shared.BaseEntity
	Name         string        `json:"name"`
	Code         string        `json:"code"`
	IsActive     bool          `json:"isActive"`
	BarcodeRules []BarcodeRule `json:"barcodeRules"`
}

// BarcodeRule is a prioritized, conditionally-active mapping from product
// attributes to a template. Lower priority values take precedence.
type BarcodeRule struct {
	ID         uuid.UUID          `json:"id"`
	ShipperID  uuid.UUID          `json:"shipperId"`
	TemplateID uuid.UUID          `json:"templateId"`
	Priority   int                `json:"priority"`
	Conditions []BarcodeCondition `json:"conditions"`
	IsActive   bool               `json:"isActive"`
}

// BarcodeCondition is one attribute test within a rule. Scalar operators
// read Value; the set operators in/notIn read Values.
type BarcodeCondition struct {
	Field    catalog.ConditionField `json:"field"`
	Operator Operator               `json:"operator"`
	Value    string                 `json:"value,omitempty"`
	Values   []string               `json:"values,omitempty"`
}

// NewShipper creates an active shipper with no rules
func NewShipper(name, code string) (*Shipper, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Shipper name cannot be empty")
	}
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Shipper code cannot be empty")
	}

	return &Shipper{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         strings.TrimSpace(name),
		Code:         strings.ToUpper(strings.TrimSpace(code)),
		IsActive:     true,
		BarcodeRules: []BarcodeRule{},
	}, nil
}

// NewBarcodeRule creates an active rule for the shipper
func NewBarcodeRule(shipperID, templateID uuid.UUID, priority int, conditions []BarcodeCondition) (*BarcodeRule, error) {
	if templateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TEMPLATE", "Template ID cannot be empty")
	}
	for _, c := range conditions {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	return &BarcodeRule{
		ID:         uuid.New(),
		ShipperID:  shipperID,
		TemplateID: templateID,
		Priority:   priority,
		Conditions: conditions,
		IsActive:   true,
	}, nil
}

// Validate checks that the condition references a known field and a valid
// operator, and that set operators carry a value list.
func (c BarcodeCondition) Validate() error {
	if !c.Field.IsValid() {
		return shared.NewDomainError("INVALID_FIELD", "Unknown condition field: "+c.Field.String())
	}
	if !c.Operator.IsValid() {
		return shared.NewDomainError("INVALID_OPERATOR", "Unknown condition operator: "+c.Operator.String())
	}
	if c.Operator.IsSetOperator() && len(c.Values) == 0 {
		return shared.NewDomainError("INVALID_VALUE", "Operator "+c.Operator.String()+" requires a value list")
	}
	return nil
}

// Matches evaluates the condition against a product attribute
func (c BarcodeCondition) Matches(product *catalog.Product) bool {
	attr, ok := product.Attribute(c.Field)
	if !ok {
		return false
	}

	switch c.Operator {
	case OperatorEquals:
		return attr == c.Value
	case OperatorContains:
		return strings.Contains(attr, c.Value)
	case OperatorStartsWith:
		return strings.HasPrefix(attr, c.Value)
	case OperatorEndsWith:
		return strings.HasSuffix(attr, c.Value)
	case OperatorIn:
		return slices.Contains(c.Values, attr)
	case OperatorNotIn:
		return !slices.Contains(c.Values, attr)
	}
	return false
}

// Matches returns true when every condition matches the product. A rule
// with no conditions matches everything, which is how catch-all rules are
// expressed.
func (r *BarcodeRule) Matches(product *catalog.Product) bool {
	for _, c := range r.Conditions {
		if !c.Matches(product) {
			return false
		}
	}
	return true
}

// SortRules orders rules ascending by priority. Rules sharing a priority
// fall back to rule ID so evaluation order never depends on storage order.
func SortRules(rules []BarcodeRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].ID.String() < rules[j].ID.String()
	})
}

// SelectRule evaluates the shipper's active rules in priority order and
// returns the first whose conditions all match, or nil when no rule
// applies. Callers surface the nil case as "no rule applies", not as an
// error.
func (s *Shipper) SelectRule(product *catalog.Product) *BarcodeRule {
	active := make([]BarcodeRule, 0, len(s.BarcodeRules))
	for _, r := range s.BarcodeRules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	SortRules(active)

	for i := range active {
		if active[i].Matches(product) {
			return &active[i]
		}
	}
	return nil
}

// AddRule appends a rule to the shipper
func (s *Shipper) AddRule(rule BarcodeRule) {
	rule.ShipperID = s.ID
	s.BarcodeRules = append(s.BarcodeRules, rule)
	s.Touch()
}

// RemoveRule deletes a rule by ID, reporting whether it existed
func (s *Shipper) RemoveRule(ruleID uuid.UUID) bool {
	for i, r := range s.BarcodeRules {
		if r.ID == ruleID {
			s.BarcodeRules = append(s.BarcodeRules[:i], s.BarcodeRules[i+1:]...)
			s.Touch()
			return true
		}
	}
	return false
}

// FindRule returns the rule with the given ID, or nil
func (s *Shipper) FindRule(ruleID uuid.UUID) *BarcodeRule {
	for i, r := range s.BarcodeRules {
		if r.ID == ruleID {
			return &s.BarcodeRules[i]
		}
	}
	return nil
}
