package models

import "time"

type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Phone     string     `json:"phone"`
	Address   Address    `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Cart      []CartLine `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt time.Time  `json:"created_at"`
}

// Address is embedded in User and snapshotted into Order at checkout.
type Address struct {
	Street   string `json:"street"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// Missing reports which required address fields are empty. Landmark is
// optional; the rest gate checkout.
func (a Address) Missing() []string {
	var missing []string
	if a.Street == "" {
		missing = append(missing, "street")
	}
	if a.Pincode == "" {
		missing = append(missing, "pincode")
	}
	if a.City == "" {
		missing = append(missing, "city")
	}
	if a.State == "" {
		missing = append(missing, "state")
	}
	return missing
}

func (a Address) Complete() bool {
	return len(a.Missing()) == 0
}
