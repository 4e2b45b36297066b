package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"unique"`
	Email        string `gorm:"unique"`
	Name         string
	PasswordHash string
	IsActive     bool `gorm:"default:true"`
}
