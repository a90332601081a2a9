package models

// ErrorResponse is the single error shape every endpoint returns.
type ErrorResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ProductListResponse struct {
	Items       []Product `json:"items"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalCount  int       `json:"totalCount"`
}

type UserListResponse struct {
	Items       []User `json:"items"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalCount  int    `json:"totalCount"`
}

type StatsResponse struct {
	UserCount          int              `json:"userCount"`
	ProductCount       int              `json:"productCount"`
	ActiveCartsCount   int              `json:"activeCartsCount"`
	TopProductsByPrice []ProductSummary `json:"topProductsByPrice"`
}
