package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		Username:      d.Username,
		Name:          d.Name,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		GoogleSubject: d.GoogleSubject,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Username:      m.Username,
		Name:          m.Name,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		GoogleSubject: m.GoogleSubject,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
