package models

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type User_input struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
