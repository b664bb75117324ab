package auth

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Workforce document management
// ============================================================================

const (
	// Global scope
	ScopeAll = "*"

	// Employee scopes
	ScopeEmployeesAll    = "employees:*"
	ScopeEmployeesRead   = "employees:read"
	ScopeEmployeesWrite  = "employees:write"
	ScopeEmployeesDelete = "employees:delete"

	// Document scopes
	ScopeDocumentsAll      = "documents:*"
	ScopeDocumentsRead     = "documents:read"
	ScopeDocumentsWrite    = "documents:write"
	ScopeDocumentsDelete   = "documents:delete"
	ScopeDocumentsReview   = "documents:review"   // Confirm or override classifications
	ScopeDocumentsDownload = "documents:download" // Generate download links
)

// DomainScopeCategories organizes domain-specific scopes
var DomainScopeCategories = map[string][]string{
	"Employees": {
		ScopeEmployeesAll,
		ScopeEmployeesRead,
		ScopeEmployeesWrite,
		ScopeEmployeesDelete,
	},
	"Documents": {
		ScopeDocumentsAll,
		ScopeDocumentsRead,
		ScopeDocumentsWrite,
		ScopeDocumentsDelete,
		ScopeDocumentsReview,
		ScopeDocumentsDownload,
	},
}

// DomainScopeDescriptions provides descriptions for domain scopes
var DomainScopeDescriptions = map[string]string{
	ScopeEmployeesAll:    "Full access to employee management",
	ScopeEmployeesRead:   "View employees",
	ScopeEmployeesWrite:  "Create and edit employees",
	ScopeEmployeesDelete: "Delete employees",

	ScopeDocumentsAll:      "Full access to document management",
	ScopeDocumentsRead:     "View documents",
	ScopeDocumentsWrite:    "Upload and edit documents",
	ScopeDocumentsDelete:   "Delete documents",
	ScopeDocumentsReview:   "Confirm or override document classifications",
	ScopeDocumentsDownload: "Generate document download links",
}

// DomainScopeGroups defines domain-specific role groupings
var DomainScopeGroups = map[string][]string{
	"hr_admin": {
		ScopeEmployeesAll,
		ScopeDocumentsAll,
	},
	"hr_manager": {
		ScopeEmployeesRead,
		ScopeEmployeesWrite,
		ScopeDocumentsRead,
		ScopeDocumentsWrite,
		ScopeDocumentsReview,
		ScopeDocumentsDownload,
	},
	"document_reviewer": {
		ScopeEmployeesRead,
		ScopeDocumentsRead,
		ScopeDocumentsReview,
	},
	"employee_self_service": {
		ScopeDocumentsRead,
		ScopeDocumentsDownload,
	},
}
