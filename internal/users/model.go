package users

import "fmt"

// User is a single registry record. UserName is the registry key and must not
// change once the record has been added.
type User struct {
	UserName string
	Email    string
	Age      int
}

func NewUser(userName, email string, age int) *User {
	return &User{UserName: userName, Email: email, Age: age}
}

func (u User) String() string {
	return fmt.Sprintf("User(username='%s', email='%s', age=%d)", u.UserName, u.Email, u.Age)
}
