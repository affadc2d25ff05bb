package catalog

// ConditionField names a product attribute that barcode rules may match on.
// Fields are a closed set mapped to typed accessors so that a rule can never
// silently coerce a missing attribute into a junk string.
type ConditionField string

const (
	FieldSKU      ConditionField = "sku"
	FieldName     ConditionField = "name"
	FieldCategory ConditionField = "category"
	FieldBrand    ConditionField = "brand"
	FieldSupplier ConditionField = "supplier"
	FieldBarcode  ConditionField = "barcode"
	FieldPrice    ConditionField = "price"
)

// IsValid checks if the ConditionField is a valid value
func (f ConditionField) IsValid() bool {
	switch f {
	case FieldSKU, FieldName, FieldCategory, FieldBrand, FieldSupplier, FieldBarcode, FieldPrice:
		return true
	}
	return false
}

// String returns the string representation of ConditionField
func (f ConditionField) String() string {
	return string(f)
}

// AllConditionFields returns all valid ConditionField values
func AllConditionFields() []ConditionField {
	return []ConditionField{
		FieldSKU, FieldName, FieldCategory, FieldBrand, FieldSupplier, FieldBarcode, FieldPrice,
	}
}
