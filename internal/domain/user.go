package domain

import "time"

// User is a registered storefront account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Contact returns the fields exposed alongside orders.
func (u User) Contact() UserContact {
	return UserContact{ID: u.ID, Name: u.Name, Email: u.Email}
}
