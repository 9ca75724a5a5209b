package model

// デモ用ユーザー（認証には使わない）
type User struct {
	UserID    string `gorm:"column:user_id;type:uuid;primaryKey" json:"userId"`
	FirstName string `gorm:"column:first_name;type:varchar(255);not null;default:''" json:"firstName"`
	LastName  string `gorm:"column:last_name;type:varchar(255);not null;default:''" json:"lastName"`
}

func (User) TableName() string { return "demo_user" }

// 初期データ（POST /users/default で戻す）
func DefaultUsers() []User {
	return []User{
		{UserID: "f52e9da6-5962-4e19-b601-62af23d826dc", FirstName: "Steven", LastName: "Audrey"},
		{UserID: "72c9e37f-f0aa-4c47-8e16-f5edcf230c9a", FirstName: "Lennart", LastName: "Reckschmidt"},
		{UserID: "4299e898-198e-46cb-8363-8ce729ca94e9", FirstName: "Maryna", LastName: "Kyrylyuk"},
		{UserID: "a3f45265-f720-424e-871c-ccdc33abf211", FirstName: "Yohana", LastName: "Priskila"},
	}
}
