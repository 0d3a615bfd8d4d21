package lifecycle

import "AssetVerse-backend/internal/store"

type SubmitInput struct {
	AssetID        string `json:"assetId" binding:"required"`
	AssetName      string `json:"assetName"`
	AssetType      string `json:"assetType"`
	AssetImage     string `json:"assetImage"`
	RequesterEmail string `json:"requesterEmail" binding:"required"`
	EmployeeName   string `json:"employeeName"`
	HREmail        string `json:"hrEmail"`
	CompanyName    string `json:"companyName"`
	Note           string `json:"note"`
}

type ApproveResult struct {
	ModifiedCount int64               `json:"modifiedCount"`
	Request       store.AssetRequest  `json:"request"`
	Assignment    store.AssignedAsset `json:"assignment"`
}

type RejectResult struct {
	ModifiedCount int64              `json:"modifiedCount"`
	Request       store.AssetRequest `json:"request"`
}

type ReturnResult struct {
	ModifiedCount int64               `json:"modifiedCount"`
	Assignment    store.AssignedAsset `json:"assignment"`
}

type RemoveResult struct {
	ModifiedCount  int64 `json:"modifiedCount"`
	ReturnedAssets int   `json:"returnedAssets"`
}
