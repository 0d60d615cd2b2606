// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register
// endpoint. Gin's binding tags enforce the required fields, email format
// and minimum password length.
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
