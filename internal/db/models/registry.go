package models

/*
    Column     |  Type   | Nullable | Default
---------------+---------+----------+---------
 id            | integer | not null | nextval('registries_id_seq')
 url           | text    | not null |
 is_public     | boolean | not null | true
 secure        | boolean | not null | true
 certificate   | text    | not null | ''
 requires_cert | boolean | not null | false
 user_name     | text    | not null | ''
 password      | text    | not null | ''
 user_email    | text    | not null | ''
 user_id       | integer |          |
*/

type Registry struct {
	ID           int64  `db:"id" json:"id"`
	URL          string `db:"url" json:"url"`
	IsPublic     bool   `db:"is_public" json:"isPublic"`
	Secure       bool   `db:"secure" json:"secure"`
	Certificate  string `db:"certificate" json:"certificate"`
	RequiresCert bool   `db:"requires_cert" json:"requiresCert"`
	Username     string `db:"user_name" json:"username"`
	Password     string `db:"password" json:"password"`
	UserEmail    string `db:"user_email" json:"userEmail"`
	UserID       *int64 `db:"user_id" json:"userId,omitempty"`
}
