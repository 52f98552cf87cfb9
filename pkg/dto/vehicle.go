package dto

// VehicleCreate is the data persisted for a new vehicle record. Image holds
// the already re-encoded JPEG payload; a record is never created without it.
type VehicleCreate struct {
	Number    string
	Owner     string
	Image     []byte
	Timestamp string
	UserID    int64
}

// VehicleRead is the metadata view of a vehicle record. Image bytes are
// never included; HasImage reports whether a payload is stored.
type VehicleRead struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Owner     string `json:"owner"`
	Timestamp string `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	HasImage  bool   `json:"-"`
}

// VehicleWithOwner joins a vehicle record with its uploader's identity.
// Username and Email fall back to "Unknown" when the user_id reference does
// not resolve.
type VehicleWithOwner struct {
	VehicleRead
	Username string `json:"username"`
	Email    string `json:"email"`
}
