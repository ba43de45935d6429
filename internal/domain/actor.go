package domain

// Role роль пользователя, как её сообщает identity-сервис.
// Сервис доверяет этому значению и не перепроверяет учетные данные.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

// Valid returns true for a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleBusiness
}

// Actor is the authenticated caller of a request
type Actor struct {
	ID   int64
	Role Role
}
