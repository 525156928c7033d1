package entity

type User struct {
	ID           string   `bson:"_id"`
	Name         string   `bson:"name"`
	Email        string   `bson:"email"`
	PasswordHash string   `bson:"password"`
	Confirmed    bool     `bson:"confirmed"`
	Movies       []string `bson:"movies"`
}
