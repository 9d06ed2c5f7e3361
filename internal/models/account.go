package models

// Profile is the account data shown on the profile screen.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Document    string `json:"document"`
	MemberSince string `json:"memberSince"`
}
