package users

type CreateUserRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name"`
	CompanyName  string `json:"companyName"`
	CompanyLogo  string `json:"companyLogo"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfileImage string `json:"profileImage"`
	Role         string `json:"role"`
}

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
	CompanyLogo *string `json:"companyLogo"`
	DateOfBirth *string `json:"dateOfBirth"`
}

type UpdateImageRequest struct {
	ProfileImage string `json:"profileImage" binding:"required"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
