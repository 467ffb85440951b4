package services

import (
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

type ServiceManager struct {
	AuthenticationService AuthenticationService
	OrganizationService   OrganizationService
	MemberService         MemberService
}

func NewServiceManager(db *gorm.DB, tokens *utils.TokenManager) *ServiceManager {
	return &ServiceManager{
		AuthenticationService: NewAuthenticationService(db, tokens),
		OrganizationService:   NewOrganizationService(db),
		MemberService:         NewMemberService(db),
	}
}
