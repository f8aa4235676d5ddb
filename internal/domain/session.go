package domain

// Session binds an opaque bearer token to the authenticated admin. Sessions
// live only in process memory; a restart logs everyone out.
type Session struct {
	Token    string `json:"-"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
