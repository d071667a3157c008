package logging

// Standardized field names for structured logging.
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldCount         = "count"
	FieldKey           = "key"
	FieldBackend       = "backend"
	FieldLocation      = "location"
	FieldFormat        = "format"
	FieldFile          = "file_path"
	FieldPattern       = "pattern"
	FieldMatcher       = "matcher"
	FieldReason        = "reason"
	FieldError         = "error"
)

// Operation names logged under FieldOperation.
const (
	OpAdd            = "add"
	OpEdit           = "edit"
	OpDelete         = "delete"
	OpImport         = "import"
	OpExport         = "export"
	OpUpdateSettings = "update_settings"
	OpLoad           = "load"
	OpSave           = "save"
)
