package entity

// User is the aggregate root for user domain
// Password is kept in plain text and compared byte-for-byte by Login.
//
// In a real-world app, prefer value objects for Email, etc.
type User struct {
	userID      int
	name        string
	email       string
	password    string
	passwordSet bool
}

// NewUser builds a user without a password; call SetPassword before Login can succeed.
func NewUser(id int, name, email string) *User {
	return &User{userID: id, name: name, email: email}
}

func (u *User) UserID() int       { return u.userID }
func (u *User) Name() string      { return u.name }
func (u *User) Email() string     { return u.email }
func (u *User) SetName(n string)  { u.name = n }
func (u *User) SetEmail(e string) { u.email = e }

// SetPassword overwrites the stored password. An empty string is a valid password once set.
func (u *User) SetPassword(pwd string) {
	u.password = pwd
	u.passwordSet = true
}

// Login reports whether email and pwd both exactly match the stored values.
// A user whose password was never set cannot log in.
func (u *User) Login(email, pwd string) bool {
	if !u.passwordSet {
		return false
	}
	return email == u.email && pwd == u.password
}
