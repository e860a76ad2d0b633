package models

import (
	"github.com/gescom/backend/internal/domain/client"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	BaseModel
	FirstName string `gorm:"column:prenom;type:varchar(100)"`
	LastName  string `gorm:"column:nom;type:varchar(100)"`
	Email     string `gorm:"column:email;type:varchar(200);index"`
	Phone     string `gorm:"column:telephone;type:varchar(50)"`
	Active    bool   `gorm:"column:is_active;not null;default:true"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "user_profiles"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *client.Client {
	return &client.Client{
		BaseEntity: m.BaseModel.ToDomain(),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Active:     m.Active,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *client.Client) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Active = c.Active
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *client.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
