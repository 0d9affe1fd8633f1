package model

// User is a row of the users table. Rows are written by an external loader;
// this service only reads them.
type User struct {
	UserID     int64  `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	FirstName  string `gorm:"column:first_name;size:100"`
	LastName   string `gorm:"column:last_name;size:100"`
	Email      string `gorm:"column:email;size:255"`
	Gender     string `gorm:"column:gender;size:20"`
	Address    string `gorm:"column:address"`
	City       string `gorm:"column:city;size:100"`
	State      string `gorm:"column:state;size:100"`
	Country    string `gorm:"column:country;size:100"`
	PostalCode string `gorm:"column:postal_code;size:20"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
