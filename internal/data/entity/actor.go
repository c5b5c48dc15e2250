package entity

type Actor struct {
	Base
	FirstName string  `db:"first_name"`
	LastName  *string `db:"last_name"`
	Bio       *string `db:"bio"`
}
