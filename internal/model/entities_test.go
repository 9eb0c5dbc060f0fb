package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPolicy() Policy {
	return Policy{
		PolicyNumber:  "CP-12345",
		Product:       "Commercial Property",
		Status:        "active",
		StartDate:     NewDate(2024, time.January, 1),
		EndDate:       NewDate(2024, time.December, 31),
		Premium:       12000,
		InsuredEntity: "Acme Corp",
	}
}

func TestValidatePolicy(t *testing.T) {
	assert.NoError(t, Validate(validPolicy()))

	bad := validPolicy()
	bad.Status = "lapsed"
	assert.Error(t, Validate(bad), "status outside the enum must fail")

	bad = validPolicy()
	bad.Premium = -1
	assert.Error(t, Validate(bad), "negative premium must fail")

	bad = validPolicy()
	bad.PolicyNumber = ""
	assert.Error(t, Validate(bad))
}

func TestValidateTeamMemberEmail(t *testing.T) {
	m := TeamMember{
		Name:  "Monique Reibelt",
		Role:  "Senior Broker",
		Email: "monique@example.com",
		Phone: "+1 (555) 123-4567",
	}
	assert.NoError(t, Validate(m))

	m.Email = "not-an-email"
	assert.Error(t, Validate(m))
}

func TestValidateInvoiceStatus(t *testing.T) {
	inv := Invoice{
		InvoiceNumber: "INV-001",
		Amount:        15000,
		DueDate:       NewDate(2025, time.November, 15),
		Status:        "outstanding",
	}
	assert.NoError(t, Validate(inv))

	inv.Status = "overdue"
	assert.Error(t, Validate(inv))
}

func TestApplyDefaults(t *testing.T) {
	p := Policy{}
	p.ApplyDefaults()
	assert.Equal(t, "active", p.Status)

	i := Invoice{}
	i.ApplyDefaults()
	assert.Equal(t, "outstanding", i.Status)

	r := Renewal{}
	r.ApplyDefaults()
	assert.Equal(t, "due", r.Status)

	a := Activity{}
	a.ApplyDefaults()
	assert.Equal(t, "system", a.Actor)

	u := Update{}
	u.ApplyDefaults()
	assert.Equal(t, "Latest Update", u.Label)

	// Explicit values are never overwritten.
	a = Activity{Actor: "John Smith"}
	a.ApplyDefaults()
	assert.Equal(t, "John Smith", a.Actor)
}

func TestDocumentItemSizeConstraint(t *testing.T) {
	size := int64(-5)
	d := DocumentItem{Filename: "evidence.pdf", SizeBytes: &size}
	assert.Error(t, Validate(d))

	size = 1024
	assert.NoError(t, Validate(d))

	// size_bytes is optional
	assert.NoError(t, Validate(DocumentItem{Filename: "evidence.pdf"}))
}
