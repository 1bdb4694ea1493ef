package models

import "time"

/*
    Column    |           Type           | Nullable | Default
--------------+--------------------------+----------+---------
 id           | integer                  | not null | nextval('users_id_seq')
 first_name   | text                     | not null | ''
 last_name    | text                     | not null | ''
 email        | text                     | not null |
 access_token | text                     |          |
 created_at   | timestamp with time zone | not null | now()
 updated_at   | timestamp with time zone | not null | now()
*/

type User struct {
	ID          int64     `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"firstName"`
	LastName    string    `db:"last_name" json:"lastName"`
	Email       string    `db:"email" json:"email"`
	AccessToken string    `db:"access_token" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
