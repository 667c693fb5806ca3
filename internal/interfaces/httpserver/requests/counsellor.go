// Package requests holds the HTTP request DTOs.
package requests

// CounsellorRequest is one student message to the counsellor.
type CounsellorRequest struct {
	Message string `json:"message" binding:"required"`
}
