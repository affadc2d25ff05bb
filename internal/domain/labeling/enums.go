package labeling

// ElementType represents the kind of visual unit placed on a label
type ElementType string

const (
	ElementTypeText    ElementType = "text"    // Free text bound to the product name
	ElementTypeSKU     ElementType = "sku"     // Product SKU
	ElementTypePrice   ElementType = "price"   // Product price
	ElementTypeBarcode ElementType = "barcode" // 1D barcode
	ElementTypeQR      ElementType = "qr"      // QR code
	ElementTypeCustom  ElementType = "custom"  // Caller-supplied text
)

// IsValid checks if the ElementType is a valid value
func (t ElementType) IsValid() bool {
	switch t {
	case ElementTypeText, ElementTypeSKU, ElementTypePrice, ElementTypeBarcode, ElementTypeQR, ElementTypeCustom:
		return true
	}
	return false
}

// String returns the string representation of ElementType
func (t ElementType) String() string {
	return string(t)
}

// AllElementTypes returns all valid ElementType values
func AllElementTypes() []ElementType {
	return []ElementType{
		ElementTypeText, ElementTypeSKU, ElementTypePrice, ElementTypeBarcode, ElementTypeQR, ElementTypeCustom,
	}
}

// QueueStatus represents the status of a queued label job
type QueueStatus string

const (
	QueueStatusPending   QueueStatus = "PENDING"
	QueueStatusPrinting  QueueStatus = "PRINTING"
	QueueStatusCompleted QueueStatus = "COMPLETED"
)

// IsValid checks if the QueueStatus is a valid value
func (s QueueStatus) IsValid() bool {
	switch s {
	case QueueStatusPending, QueueStatusPrinting, QueueStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of QueueStatus
func (s QueueStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further work is expected for this status.
// The queue deliberately permits backward transitions via batch updates,
// so this describes intent rather than an enforced state machine.
func (s QueueStatus) IsTerminal() bool {
	return s == QueueStatusCompleted
}

// Operator represents a barcode rule condition operator
type Operator string

const (
	OperatorEquals     Operator = "equals"
	OperatorContains   Operator = "contains"
	OperatorStartsWith Operator = "startsWith"
	OperatorEndsWith   Operator = "endsWith"
	OperatorIn         Operator = "in"
	OperatorNotIn      Operator = "notIn"
)

// IsValid checks if the Operator is a valid value
func (o Operator) IsValid() bool {
	switch o {
	case OperatorEquals, OperatorContains, OperatorStartsWith, OperatorEndsWith, OperatorIn, OperatorNotIn:
		return true
	}
	return false
}

// String returns the string representation of Operator
func (o Operator) String() string {
	return string(o)
}

// IsSetOperator returns true if the operator matches against a value list
func (o Operator) IsSetOperator() bool {
	return o == OperatorIn || o == OperatorNotIn
}

// PaperType represents the label stock a template targets
type PaperType string

const (
	PaperTypeRoll    PaperType = "ROLL"    // Continuous thermal roll
	PaperTypeSheetA4 PaperType = "A4"      // A4 sheet with a label grid
	PaperTypeDieCut  PaperType = "DIE_CUT" // Pre-cut label stock
)

// IsValid checks if the PaperType is a valid value
func (p PaperType) IsValid() bool {
	switch p {
	case PaperTypeRoll, PaperTypeSheetA4, PaperTypeDieCut:
		return true
	}
	return false
}

// String returns the string representation of PaperType
func (p PaperType) String() string {
	return string(p)
}
