package domain

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
	Role     string `db:"role"`
}

func (u *User) IsAdmin() bool { return u.Role == "ADMIN" }
