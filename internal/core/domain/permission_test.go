package domain_test

import (
	"testing"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCapabilities_Can(t *testing.T) {
	caps := domain.NewCapabilities(
		domain.Permission{Resource: domain.ResourceTitle, Action: domain.ActionRead},
		domain.Permission{Resource: domain.ResourceAccount, Action: domain.ActionManage},
	)

	assert.True(t, caps.Can(domain.ActionRead, domain.ResourceTitle))
	assert.False(t, caps.Can(domain.ActionCreate, domain.ResourceTitle))
	assert.True(t, caps.Can(domain.ActionDelete, domain.ResourceAccount), "manage implies delete")
	assert.False(t, caps.Can(domain.ActionRead, domain.ResourcePartner))
}

func TestCapabilities_AllResource(t *testing.T) {
	admin := domain.NewCapabilities(domain.Permission{Resource: domain.ResourceAll, Action: domain.ActionManage})
	viewer := domain.NewCapabilities(domain.Permission{Resource: domain.ResourceAll, Action: domain.ActionRead})

	assert.True(t, admin.Can(domain.ActionCreate, domain.ResourceTitle))
	assert.True(t, viewer.Can(domain.ActionRead, domain.ResourceReport))
	assert.False(t, viewer.Can(domain.ActionUpdate, domain.ResourceReport))
}

func TestCapabilities_ZeroValueDeniesEverything(t *testing.T) {
	var caps domain.Capabilities
	assert.False(t, caps.Can(domain.ActionRead, domain.ResourceTitle))
	assert.Empty(t, caps.Permissions())
}

func TestCapabilities_Permissions(t *testing.T) {
	caps := domain.NewCapabilities(
		domain.Permission{Resource: domain.ResourceTitle, Action: domain.ActionRead},
		domain.Permission{Resource: domain.ResourceAccount, Action: domain.ActionRead},
		domain.Permission{Resource: domain.ResourceTitle, Action: domain.ActionCreate},
	)
	assert.Equal(t, []domain.Permission{
		{Resource: domain.ResourceAccount, Action: domain.ActionRead},
		{Resource: domain.ResourceTitle, Action: domain.ActionCreate},
		{Resource: domain.ResourceTitle, Action: domain.ActionRead},
	}, caps.Permissions())
}
