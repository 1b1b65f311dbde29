package auth

// RoleAdmin is the only role. Every token carries it.
const RoleAdmin = "admin"

// Claims is what a verified token tells the API about its bearer.
type Claims struct {
	Subject string
	Role    string
}
