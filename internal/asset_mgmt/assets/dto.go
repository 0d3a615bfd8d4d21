package assets

// ===== Requests =====

type CreateAssetRequest struct {
	ProductName     string `json:"productName" binding:"required"`
	ProductType     string `json:"productType" binding:"required"`
	ProductImage    string `json:"productImage"`
	ProductQuantity *int   `json:"productQuantity" binding:"required"`
	HREmail         string `json:"hrEmail"`
	CompanyName     string `json:"companyName"`
}

// UpdateAssetRequest: nil fields are left unchanged.
type UpdateAssetRequest struct {
	ProductName     *string `json:"productName,omitempty"`
	ProductType     *string `json:"productType,omitempty"`
	ProductImage    *string `json:"productImage,omitempty"`
	ProductQuantity *int    `json:"productQuantity,omitempty"`
}

// ===== Responses =====

type CreateAssetResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type MutationResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}
