package models

/*
 Column | Type | Nullable
--------+------+----------
 key    | text | not null
 value  | text | not null
*/

type Config struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}
