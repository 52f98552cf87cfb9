package dto

// ExportDocument is the portable full-database dump produced by the admin
// export endpoint and accepted back by import. Image payloads travel
// base64-encoded (Go's JSON encoding of []byte).
type ExportDocument struct {
	ExportDate string           `json:"export_date"`
	Users      []*UserExport    `json:"users"`
	Vehicles   []*VehicleExport `json:"vehicles"`
}

// UserExport mirrors the users table, raw password included.
type UserExport struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// VehicleExport mirrors the vehicles table with the image payload inline.
// A missing image field imports as a record without a payload.
type VehicleExport struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Owner     string `json:"owner"`
	Timestamp string `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	Image     []byte `json:"image,omitempty"`
}
