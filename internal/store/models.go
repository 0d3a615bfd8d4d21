package store

import "time"

// Asset types
const (
	TypeReturnable = "Returnable"
	TypeConsumable = "Consumable"
)

// Request statuses
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// Assignment statuses
const (
	AssignmentAssigned = "assigned"
	AssignmentReturned = "returned"
)

// Affiliation statuses
const (
	AffiliationActive   = "active"
	AffiliationInactive = "inactive"
)

// Roles
const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type User struct {
	ID           string    `json:"_id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	CompanyName  string    `json:"companyName" db:"company_name"`
	CompanyLogo  string    `json:"companyLogo" db:"company_logo"`
	DateOfBirth  string    `json:"dateOfBirth" db:"date_of_birth"`
	ProfileImage string    `json:"profileImage" db:"profile_image"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ProfilePatch holds the mutable profile fields; nil means unchanged.
type ProfilePatch struct {
	Name        *string
	CompanyName *string
	CompanyLogo *string
	DateOfBirth *string
}

type Package struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	EmployeeLimit int      `json:"employeeLimit"`
	Price         float64  `json:"price"`
	Features      []string `json:"features"`
}

type Asset struct {
	ID                string    `json:"_id" db:"id"`
	ProductName       string    `json:"productName" db:"product_name"`
	ProductType       string    `json:"productType" db:"product_type"`
	ProductImage      string    `json:"productImage" db:"product_image"`
	ProductQuantity   int       `json:"productQuantity" db:"product_quantity"`
	AvailableQuantity int       `json:"availableQuantity" db:"available_quantity"`
	HREmail           string    `json:"hrEmail" db:"hr_email"`
	CompanyName       string    `json:"companyName" db:"company_name"`
	DateAdded         time.Time `json:"dateAdded" db:"date_added"`
}

// AssetPatch updates descriptive fields and shifts both quantity counters by
// QuantityDelta. The store rejects a delta that would drive availableQuantity
// below zero with ErrGuard.
type AssetPatch struct {
	ProductName   *string
	ProductType   *string
	ProductImage  *string
	QuantityDelta int
}

type AssetRequest struct {
	ID             string     `json:"_id" db:"id"`
	AssetID        string     `json:"assetId" db:"asset_id"`
	AssetName      string     `json:"assetName" db:"asset_name"`
	AssetType      string     `json:"assetType" db:"asset_type"`
	AssetImage     string     `json:"assetImage" db:"asset_image"`
	RequesterEmail string     `json:"requesterEmail" db:"requester_email"`
	EmployeeName   string     `json:"employeeName" db:"employee_name"`
	HREmail        string     `json:"hrEmail" db:"hr_email"`
	CompanyName    string     `json:"companyName" db:"company_name"`
	RequestDate    time.Time  `json:"requestDate" db:"request_date"`
	ApprovalDate   *time.Time `json:"approvalDate" db:"approval_date"`
	RequestStatus  string     `json:"requestStatus" db:"request_status"`
	Note           string     `json:"note" db:"note"`
	ProcessedBy    string     `json:"processedBy" db:"processed_by"`
}

type AssignedAsset struct {
	ID             string     `json:"_id" db:"id"`
	AssetID        string     `json:"assetId" db:"asset_id"`
	RequestID      string     `json:"requestId" db:"request_id"`
	AssetName      string     `json:"assetName" db:"asset_name"`
	AssetType      string     `json:"assetType" db:"asset_type"`
	AssetImage     string     `json:"assetImage" db:"asset_image"`
	EmployeeEmail  string     `json:"employeeEmail" db:"employee_email"`
	EmployeeName   string     `json:"employeeName" db:"employee_name"`
	HREmail        string     `json:"hrEmail" db:"hr_email"`
	CompanyName    string     `json:"companyName" db:"company_name"`
	AssignmentDate time.Time  `json:"assignmentDate" db:"assignment_date"`
	ApprovalDate   time.Time  `json:"approvalDate" db:"approval_date"`
	ReturnDate     *time.Time `json:"returnDate" db:"return_date"`
	Status         string     `json:"status" db:"status"`
}

type Affiliation struct {
	ID              string    `json:"_id" db:"id"`
	EmployeeEmail   string    `json:"employeeEmail" db:"employee_email"`
	EmployeeName    string    `json:"employeeName" db:"employee_name"`
	EmployeePhoto   string    `json:"employeePhoto" db:"employee_photo"`
	HREmail         string    `json:"hrEmail" db:"hr_email"`
	CompanyName     string    `json:"companyName" db:"company_name"`
	CompanyLogo     string    `json:"companyLogo" db:"company_logo"`
	AffiliationDate time.Time `json:"affiliationDate" db:"affiliation_date"`
	AssetsCount     int       `json:"assetsCount" db:"assets_count"`
	Status          string    `json:"status" db:"status"`
}
