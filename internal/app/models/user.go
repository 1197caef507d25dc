package models

// User is the external account entity referenced by hero awards. Only the
// safe subset of its fields ever leaves the API; credentials stay internal.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	Password string `json:"-"`
	IsStaff  bool   `json:"-"`
}
