package model

import "time"

// Collection names in the document store. By convention each entity is
// stored in the lowercase of its type name.
const (
	CollectionPolicy     = "policy"
	CollectionDocument   = "documentitem"
	CollectionInvoice    = "invoice"
	CollectionRenewal    = "renewal"
	CollectionActivity   = "activity"
	CollectionUpdate     = "update"
	CollectionTeamMember = "teammember"
)

// Policy is an insurance policy held by the insured entity.
type Policy struct {
	PolicyNumber  string  `json:"policy_number" bson:"policy_number" validate:"required"`
	Product       string  `json:"product" bson:"product" validate:"required"`
	Status        string  `json:"status" bson:"status" validate:"required,oneof=active expired cancelled"`
	StartDate     Date    `json:"start_date" bson:"start_date" validate:"required"`
	EndDate       Date    `json:"end_date" bson:"end_date" validate:"required"`
	Premium       float64 `json:"premium" bson:"premium" validate:"gte=0"`
	InsuredEntity string  `json:"insured_entity" bson:"insured_entity" validate:"required"`
}

// ApplyDefaults fills fields the stored record may omit.
func (p *Policy) ApplyDefaults() {
	if p.Status == "" {
		p.Status = "active"
	}
}

// DocumentItem is uploaded file metadata. The binary itself is never
// persisted; only what the portal needs to render a document row.
type DocumentItem struct {
	Filename     string `json:"filename" bson:"filename" validate:"required"`
	ContentType  string `json:"content_type,omitempty" bson:"content_type,omitempty"`
	SizeBytes    *int64 `json:"size_bytes,omitempty" bson:"size_bytes,omitempty" validate:"omitempty,gte=0"`
	Category     string `json:"category,omitempty" bson:"category,omitempty"`
	PolicyNumber string `json:"policy_number,omitempty" bson:"policy_number,omitempty"`
}

// Invoice is a premium invoice. policy_number is a free-text correlation
// key, not a validated reference.
type Invoice struct {
	InvoiceNumber string  `json:"invoice_number" bson:"invoice_number" validate:"required"`
	Amount        float64 `json:"amount" bson:"amount" validate:"gte=0"`
	DueDate       Date    `json:"due_date" bson:"due_date" validate:"required"`
	Status        string  `json:"status" bson:"status" validate:"required,oneof=outstanding paid"`
	PolicyNumber  string  `json:"policy_number,omitempty" bson:"policy_number,omitempty"`
}

func (i *Invoice) ApplyDefaults() {
	if i.Status == "" {
		i.Status = "outstanding"
	}
}

// Renewal tracks an upcoming policy renewal.
type Renewal struct {
	PolicyNumber string `json:"policy_number" bson:"policy_number" validate:"required"`
	Product      string `json:"product" bson:"product" validate:"required"`
	RenewalDate  Date   `json:"renewal_date" bson:"renewal_date" validate:"required"`
	Status       string `json:"status" bson:"status" validate:"required,oneof=due submitted not_required"`
}

func (r *Renewal) ApplyDefaults() {
	if r.Status == "" {
		r.Status = "due"
	}
}

// Activity is one entry in the activity feed. Type is free text
// (e.g. policy_renewal, payment_made, document_uploaded), not an enum.
type Activity struct {
	Type       string     `json:"type" bson:"type" validate:"required"`
	Message    string     `json:"message" bson:"message" validate:"required"`
	Actor      string     `json:"actor" bson:"actor"`
	OccurredAt *time.Time `json:"occurred_at,omitempty" bson:"occurred_at,omitempty"`
}

func (a *Activity) ApplyDefaults() {
	if a.Actor == "" {
		a.Actor = "system"
	}
}

// Notification is the portal's notification bar content. It is computed
// per request and never persisted.
type Notification struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Level   string `json:"level" validate:"required,oneof=info warning critical"`
}

// Update is a risk/insurance news item. DateStr is display text, not a
// parsed date.
type Update struct {
	Title       string `json:"title" bson:"title" validate:"required"`
	Label       string `json:"label" bson:"label"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	DateStr     string `json:"date_str" bson:"date_str" validate:"required"`
}

func (u *Update) ApplyDefaults() {
	if u.Label == "" {
		u.Label = "Latest Update"
	}
}

// TeamMember is a broker-side contact shown on the team page.
type TeamMember struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Role     string `json:"role" bson:"role" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Phone    string `json:"phone" bson:"phone" validate:"required"`
	Linkedin string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

// DashboardCounts is the aggregate summary for the dashboard header.
type DashboardCounts struct {
	ActivePolicies      int     `json:"active_policies"`
	OutstandingInvoices int     `json:"outstanding_invoices"`
	OutstandingTotal    float64 `json:"outstanding_total"`
	RenewalsDue         int     `json:"renewals_due"`
	RiskUpdates         int     `json:"risk_updates"`
}
