package userservice

// User модель пользователя из identity-сервиса
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// Email может быть пустым: пользователь не обязан указывать адрес,
	// в этом случае уведомления ему не отправляются
	Email   string `json:"email"`
	IsStaff bool   `json:"isStaff"`
}

// HasEmail возвращает true, если пользователю можно отправлять уведомления
func (u *User) HasEmail() bool {
	return u.Email != ""
}

// userIDsResponse ответ identity-сервиса со списком ID пользователей
type userIDsResponse struct {
	UserIDs []int64 `json:"userIds"`
}
