package handlers

import (
	"github.com/saranyasailakshmi/DIV-Tech/services"
)

type HandlerManager struct {
	AuthenticationHandler *AuthenticationHandler
	OrganizationHandler   *OrganizationHandler
	MemberHandler         *MemberHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		AuthenticationHandler: NewAuthenticationHandler(sm.AuthenticationService),
		OrganizationHandler:   NewOrganizationHandler(sm.OrganizationService),
		MemberHandler:         NewMemberHandler(sm.MemberService),
	}
}
