package vehicle

// Vehicle represents a vehicle record in the database. The image payload is
// stored in-row as a JPEG blob; UserID is an advisory reference to the
// uploading account with no foreign-key constraint, so it may point at a
// nonexistent user.
type Vehicle struct {
	ID        int64  `gorm:"primaryKey"`
	Number    string `gorm:"index;size:50"`
	Owner     string `gorm:"index;size:255"`
	Image     []byte `gorm:"type:bytea"`
	Timestamp string `gorm:"index;size:32"`
	UserID    int64
}

// TableName specifies the table name for the Vehicle model.
func (Vehicle) TableName() string {
	return "vehicles"
}
