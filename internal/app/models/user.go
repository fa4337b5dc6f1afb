package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"-" bson:"password"`
	FullName  string `json:"fullName" bson:"fullName"`
	Role      string `json:"role" bson:"role"`
	TimeModel `bson:",inline"`
}
